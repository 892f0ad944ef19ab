// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import "time"

func secondsToDuration(seconds uint32) time.Duration {
	return time.Duration(seconds) * time.Second
}
