// Copyright 2026 Wei Tang. All rights reserved.
// Use of this source code is governed by a GNU-style
// license that can be found in the LICENSE file.

package at91pm

// sramInit relocates the suspend routine into retained on-chip
// memory so it keeps executing after the master clock is disabled:
// find the SRAM pool device, allocate exactly the routine image size,
// translate to a physical address, establish an executable mapping
// and copy the image there. Every failure is soft, it logs a warning
// and leaves the routine unset, which keeps suspend-to-RAM
// unregistered while standby and cpu idle stay available.
//
// Calling sramInit again after a successful load is a no-op, the
// pool allocation is never repeated.
func (pm *PowerManagement) sramInit() {
	if pm.suspendSramFn != nil {
		return
	}

	pool := pm.config.dt.SramPool()

	if pool == nil {
		logger.Warn("sramInit: failed to find sram device!")
		return
	}

	size := uint32(len(suspendInSramCode))

	sramBase, err := pool.Alloc(size)

	if err != nil {
		logger.Warnf("sramInit: unable to alloc ocram! (%v)", err)
		return
	}

	sramPbase := pool.VirtToPhys(sramBase)

	region, err := pool.MapExec(sramPbase, size)

	if err != nil {
		logger.Warnf("SRAM: Could not map (%v)", err)
		return
	}

	// copy the pm suspend handler to SRAM
	pm.suspendSramFn = region.LoadCode(suspendInSramCode)
}
