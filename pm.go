// Copyright 2026 Wei Tang. All rights reserved.
// Use of this source code is governed by a GNU-style
// license that can be found in the LICENSE file.

// this code is mainly inspired and based on the linux kernel AT91
// power management code, for detailed information see

// https://git.kernel.org/pub/scm/linux/kernel/git/torvalds/linux.git/tree/arch/arm/mach-at91

package at91pm

import (
	"github.com/boljen/go-bitmap"
)

type pmData struct {
	uhpUdpMask uint32
	memctrl    MemoryControllerKind
	ddrcPid    uint32
	isSama5d4  bool
}

// PowerManagement is the process wide power state machine. It is
// created once by a variant initializer and driven cooperatively by
// the hosting suspend framework, never concurrently with itself, so
// it carries no locking.
type PowerManagement struct {
	config *PlatformConfig

	data     pmData
	ramcBase [2]RegisterBlock

	targetState SuspendState

	suspendSramFn SuspendFunc
	standby       StandbyFunc

	caps bitmap.Bitmap
}

func (pm *PowerManagement) ValidStates() []SuspendState {
	return []SuspendState{SuspendOn, SuspendStandby, SuspendToRam}
}

// ValidState is the per-state query form of ValidStates, matching the
// framework's valid hook.
func (pm *PowerManagement) ValidState(state SuspendState) bool {
	switch state {
	case SuspendOn, SuspendStandby, SuspendToRam:
		return true

	default:
		return false
	}
}

// Begin is called after processes are frozen, but before devices are
// shut down. It only records how deep the coming cycle wants to go.
func (pm *PowerManagement) Begin(state SuspendState) error {
	pm.targetState = state
	return nil
}

// EnteringSlowClock is called from peripheral driver suspend paths to
// see how deeply the current cycle suspends. Some controllers (OHCI
// for one) need a PLL derived clock to act as a wakeup source, and
// those are gone in slow clock mode.
func (pm *PowerManagement) EnteringSlowClock() bool {
	return pm.targetState == SuspendToRam
}

func (pm *PowerManagement) suspend(state SuspendState) {
	data := uint32(pm.data.memctrl)

	if state == SuspendToRam {
		data |= PmMode(PmSlowClock)
	}

	data |= PmDdrcPid(pm.data.ddrcPid)

	if pm.data.isSama5d4 {
		data |= PmIsSama5d4(PmSama5d4Bit)
	}

	pm.config.cache.FlushAll()
	pm.config.cache.OuterDisable()

	pm.suspendSramFn(pm.config.pmc, pm.ramcBase[0], pm.ramcBase[1], data)

	pm.config.cache.OuterResume()
}

// Enter drives one power state transition. Suspend-to-RAM is STANDBY
// plus slow clock mode: drivers must suspend more deeply, the master
// clock switches to the 32 kHz oscillator and the main oscillator is
// turned off. Every exit path, aborts included, resets the target
// state to ON and restores pin state before returning to the
// framework.
func (pm *PowerManagement) Enter(state SuspendState) error {
	pm.config.pins.Suspend()

	switch state {
	case SuspendToRam:
		if pm.suspendSramFn == nil {
			logger.Warn("AT91: PM - suspend-to-RAM requested without SRAM routine")
			break
		}

		// clocks must be in a valid state before the switch,
		// there is no way back once the routine runs
		if !pm.verifyClocks() {
			break
		}

		pm.suspend(state)

	// STANDBY has all drivers suspended, ignores irqs not marked
	// as wakeup event sources and reduces DRAM power, but keeps
	// main and cpu clocks untouched.
	case SuspendStandby:
		if pm.suspendSramFn == nil {
			pm.config.idle.Idle()
			break
		}

		pm.suspend(state)

	case SuspendOn:
		pm.config.idle.Idle()

	default:
		logger.Debugf("AT91: PM - bogus suspend state %d", state)
	}

	pm.targetState = SuspendOn

	pm.config.pins.Resume()
	return nil
}

// End is called right prior to thawing processes.
func (pm *PowerManagement) End() {
	pm.targetState = SuspendOn
}

// DeepSuspendAvailable reports whether the relocated routine loaded
// and suspend-to-RAM was registered with the framework.
func (pm *PowerManagement) DeepSuspendAvailable() bool {
	return pm.caps.Get(capDeepSuspend)
}

// StandbyAvailable reports whether a low-power refresh strategy was
// selected for the cpuidle driver.
func (pm *PowerManagement) StandbyAvailable() bool {
	return pm.caps.Get(capStandbyFn)
}

func (pm *PowerManagement) setStandby(standby StandbyFunc) {
	if standby != nil {
		pm.standby = standby
		pm.caps.Set(capStandbyFn, true)
	}
}

func (pm *PowerManagement) pmInit() {
	pm.sramInit()

	if pm.standby != nil && pm.config.framework != nil {
		pm.config.framework.RegisterCpuIdle(pm.standby)
	}

	if pm.suspendSramFn != nil {
		pm.caps.Set(capDeepSuspend, true)

		if pm.config.framework != nil {
			pm.config.framework.RegisterSuspendOps(pm)
		}
	} else {
		logger.Info("AT91: PM not supported, due to no SRAM allocated")
	}
}

func newPowerManagement(config *PlatformConfig) (*PowerManagement, error) {
	if err := config.check(); err != nil {
		return nil, err
	}

	pm := &PowerManagement{
		config:      config,
		targetState: SuspendOn,
		caps:        bitmap.New(capCount),
	}

	return pm, nil
}
