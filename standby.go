// Copyright 2026 Wei Tang. All rights reserved.
// Use of this source code is governed by a GNU-style
// license that can be found in the LICENSE file.

// this code is mainly inspired and based on the linux kernel AT91
// power management code, for detailed information see

// https://git.kernel.org/pub/scm/linux/kernel/git/torvalds/linux.git/tree/arch/arm/mach-at91

package at91pm

type ramcID struct {
	compatible string
	standby    func(*PowerManagement)
}

// compat string -> standby strategy, first match in discovery order
// wins; a system has one controller, or one primary plus a secondary
var ramcIDs = []ramcID{
	{CompatRm9200Sdramc, (*PowerManagement).rm9200Standby},
	{CompatSam9260Sdramc, (*PowerManagement).sam9SdramStandby},
	{CompatSam9g45Ddramc, (*PowerManagement).ddrStandby},
	{CompatSama5d3Ddramc, (*PowerManagement).ddrStandby},
}

func matchRamcID(compatible string) *ramcID {
	for i := range ramcIDs {
		if ramcIDs[i].compatible == compatible {
			return &ramcIDs[i]
		}
	}

	return nil
}

// dtRamc walks the memory-controller nodes, maps their register
// blocks and selects the standby strategy of the first known family.
// A platform without any compatible RAM controller cannot run at all,
// that case aborts the process.
func (pm *PowerManagement) dtRamc() {
	idx := 0
	var standby func(*PowerManagement)

	pm.config.dt.EachRamc(func(compatible string, base RegisterBlock) {
		id := matchRamcID(compatible)

		if id == nil {
			return
		}

		if base == nil {
			logger.Panicf("unable to map ramc[%d] cpu registers", idx)
		}

		if idx < len(pm.ramcBase) {
			pm.ramcBase[idx] = base
		}

		if standby == nil {
			standby = id.standby
		}

		idx++
	})

	if idx == 0 {
		logger.Panic("unable to find compatible ram controller node in dtb")
	}

	if idx > 1 {
		pm.caps.Set(capSecondaryRamc, true)
	}

	if standby == nil {
		logger.Warn("ramc no standby function available")
		return
	}

	boundStandby := standby

	pm.setStandby(func() { boundStandby(pm) })
}

// rm9200Standby requests SDRAM self-refresh and idles the cpu. The
// controller leaves self-refresh on its own at the first access after
// wakeup, there is nothing to restore.
func (pm *PowerManagement) rm9200Standby() {
	pm.ramcBase[0].WriteRegister(Rm9200SdramcSRR, 1)

	pm.config.idle.Idle()
}

// sam9SdramStandby puts the SDRAM controller into self-refresh for
// the duration of one idle period, then restores the previous
// low-power configuration.
func (pm *PowerManagement) sam9SdramStandby() {
	var saved1 uint32

	saved0 := pm.ramcBase[0].ReadRegister(SdramcLPR)
	lpr0 := (saved0 &^ SdramcLPCBMask) | SdramcLPCBSelfRefresh

	if pm.ramcBase[1] != nil {
		saved1 = pm.ramcBase[1].ReadRegister(SdramcLPR)
		lpr1 := (saved1 &^ SdramcLPCBMask) | SdramcLPCBSelfRefresh
		pm.ramcBase[1].WriteRegister(SdramcLPR, lpr1)
	}

	pm.ramcBase[0].WriteRegister(SdramcLPR, lpr0)

	pm.config.idle.Idle()

	pm.ramcBase[0].WriteRegister(SdramcLPR, saved0)

	if pm.ramcBase[1] != nil {
		pm.ramcBase[1].WriteRegister(SdramcLPR, saved1)
	}
}

// ddrStandby does the same for the DDR/SDR controllers, on both
// blocks when a secondary controller is present.
func (pm *PowerManagement) ddrStandby() {
	var saved1 uint32

	saved0 := pm.ramcBase[0].ReadRegister(DdrsdrcLPR)
	lpr0 := (saved0 &^ DdrsdrcLPCBMask) | DdrsdrcLPCBSelfRefresh

	if pm.ramcBase[1] != nil {
		saved1 = pm.ramcBase[1].ReadRegister(DdrsdrcLPR)
		lpr1 := (saved1 &^ DdrsdrcLPCBMask) | DdrsdrcLPCBSelfRefresh
		pm.ramcBase[1].WriteRegister(DdrsdrcLPR, lpr1)
	}

	pm.ramcBase[0].WriteRegister(DdrsdrcLPR, lpr0)

	pm.config.idle.Idle()

	pm.ramcBase[0].WriteRegister(DdrsdrcLPR, saved0)

	if pm.ramcBase[1] != nil {
		pm.ramcBase[1].WriteRegister(DdrsdrcLPR, saved1)
	}
}
