// Copyright 2026 Wei Tang. All rights reserved.
// Use of this source code is governed by a GNU-style
// license that can be found in the LICENSE file.

// this code is mainly inspired and based on the linux kernel AT91
// power management code, for detailed information see

// https://git.kernel.org/pub/scm/linux/kernel/git/torvalds/linux.git/tree/arch/arm/mach-at91

package at91pm

// One initializer per supported SoC family, invoked exactly once at
// platform bring-up. Each performs the RAM controller discovery,
// fills the platform parameters matching that family's clock status
// layout and memory controller, and triggers the common init. The
// parameter struct is immutable afterwards.

func Rm9200PmInit(config *PlatformConfig) (*PowerManagement, error) {
	pm, err := newPowerManagement(config)

	if err != nil {
		return nil, err
	}

	pm.dtRamc()

	// AT91RM9200 SDRAM low-power mode cannot be used with self-refresh
	pm.ramcBase[0].WriteRegister(Rm9200SdramcLPR, 0)

	pm.data.uhpUdpMask = Rm9200PmcUHP | Rm9200PmcUDP
	pm.data.memctrl = MemCtrlMC

	pm.pmInit()
	return pm, nil
}

func Sam9260PmInit(config *PlatformConfig) (*PowerManagement, error) {
	pm, err := newPowerManagement(config)

	if err != nil {
		return nil, err
	}

	pm.dtRamc()

	pm.data.memctrl = MemCtrlSDRAMC
	pm.data.uhpUdpMask = Sam926xPmcUHP | Sam926xPmcUDP

	pm.pmInit()
	return pm, nil
}

func Sam9g45PmInit(config *PlatformConfig) (*PowerManagement, error) {
	pm, err := newPowerManagement(config)

	if err != nil {
		return nil, err
	}

	pm.dtRamc()

	pm.data.uhpUdpMask = Sam926xPmcUHP
	pm.data.memctrl = MemCtrlDDRSDR

	pm.pmInit()
	return pm, nil
}

func Sam9x5PmInit(config *PlatformConfig) (*PowerManagement, error) {
	pm, err := newPowerManagement(config)

	if err != nil {
		return nil, err
	}

	pm.dtRamc()

	pm.data.uhpUdpMask = Sam926xPmcUHP | Sam926xPmcUDP
	pm.data.memctrl = MemCtrlDDRSDR

	pm.pmInit()
	return pm, nil
}

func Sama5d3PmInit(config *PlatformConfig) (*PowerManagement, error) {
	pm, err := newPowerManagement(config)

	if err != nil {
		return nil, err
	}

	pm.dtRamc()

	pm.data.uhpUdpMask = Sam926xPmcUHP | Sam926xPmcUDP
	pm.data.memctrl = MemCtrlDDRSDR
	pm.data.ddrcPid = Sama5d3IdMpddrc

	pm.pmInit()
	return pm, nil
}

func Sama5d4PmInit(config *PlatformConfig) (*PowerManagement, error) {
	pm, err := newPowerManagement(config)

	if err != nil {
		return nil, err
	}

	pm.dtRamc()

	pm.data.uhpUdpMask = Sam926xPmcUHP | Sam926xPmcUDP
	pm.data.memctrl = MemCtrlDDRSDR
	pm.data.ddrcPid = Sama5d4IdMpddrc
	pm.data.isSama5d4 = true

	pm.pmInit()
	return pm, nil
}
