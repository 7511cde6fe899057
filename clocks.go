// Copyright 2026 Wei Tang. All rights reserved.
// Use of this source code is governed by a GNU-style
// license that can be found in the LICENSE file.

package at91pm

// verifyClocks checks that all clocks are in a state that allows
// entering slow-clock mode. Pure precondition gate: diagnostic
// logging only, no state is touched. Callers abort the deep suspend
// path on false.
func (pm *PowerManagement) verifyClocks() bool {
	scsr := pm.config.pmc.ReadRegister(PmcSCSR)

	// USB must not be using PLL B
	if (scsr & pm.data.uhpUdpMask) != 0 {
		logger.Error("AT91: PM - Suspend-to-RAM with USB still active")
		return false
	}

	// PCK0..PCK3 must be disabled, or configured to use clk32k
	for i := 0; i < pmcProgrammableClocks; i++ {
		if (scsr & (PmcPCK0 << uint(i))) == 0 {
			continue
		}

		css := pm.config.pmc.ReadRegister(PmcPCKR(i)) & PmcCSS

		if css != PmcCSSSlow {
			logger.Errorf("AT91: PM - Suspend-to-RAM with PCK%d src %d", i, css)
			return false
		}
	}

	// drivers should have previously suspended the USB PLL
	if (pm.config.pmc.ReadRegister(CkgrUCKR) & PmcUPLLEN) != 0 {
		logger.Error("AT91: PM - Suspend-to-RAM with USB PLL running")
		return false
	}

	// drivers should have previously suspended PLL B
	if (pm.config.pmc.ReadRegister(PmcSR) & PmcLOCKB) != 0 {
		logger.Error("AT91: PM - Suspend-to-RAM with PLL B running")
		return false
	}

	return true
}
