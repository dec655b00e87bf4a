// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import "github.com/convexcore/narrowphase/internal/tracelog"

// trace emits a DEBUG-level message on logger if one was supplied. A nil
// logger means tracing is off, and is the common case on the hot path.
func trace(logger *tracelog.Logger, format string, v ...interface{}) {
	if logger == nil {
		return
	}
	logger.Debug(format, v...)
}
