// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gtl provides growable generic containers: Array, Stack, Queue
// and Deque. All four share one circular buffer whose capacity grows
// geometrically (by 1.5x by default, never below a minimum capacity) and
// shrinks only when Trim is called.
//
// Each container counts structural modifications. An Iterator records the
// count when it is created and stops with an error of kind
// errors.ConcurrentMutation once the container changes underneath it:
//
//	for it := q.Iterator(); it.Next(); {
//		use(it.Value())
//	}
//
// The check is advisory. The containers are not safe for concurrent use.
package gtl
