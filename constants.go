// Copyright 2026 Wei Tang. All rights reserved.
// Use of this source code is governed by a GNU-style
// license that can be found in the LICENSE file.

// this code is mainly inspired and based on the linux kernel AT91
// power management code, for detailed information see

// https://git.kernel.org/pub/scm/linux/kernel/git/torvalds/linux.git/tree/arch/arm/mach-at91

package at91pm

type SuspendState uint8 // system power states handed in by the suspend framework

const (
	SuspendOn      SuspendState = 0
	SuspendStandby              = 1
	SuspendToRam                = 2
)

type MemoryControllerKind int // memory controller families, low nibble of the pm parameter word

const (
	MemCtrlMC     MemoryControllerKind = 0
	MemCtrlSDRAMC                      = 1
	MemCtrlDDRSDR                      = 2
)

// layout of the parameter word passed to the relocated suspend routine
const (
	PmMemtypeMask uint32 = 0x0f

	PmModeOffset        = 4
	PmModeMask   uint32 = 0x01
	PmSlowClock  uint32 = 0x01

	PmSama5d4Offset        = 5
	PmSama5d4Mask   uint32 = 0x01
	PmSama5d4Bit    uint32 = 0x01

	PmDdrcPidOffset        = 8
	PmDdrcPidMask   uint32 = 0xff
)

func PmMode(x uint32) uint32 {
	return (x & PmModeMask) << PmModeOffset
}

func PmIsSama5d4(x uint32) uint32 {
	return (x & PmSama5d4Mask) << PmSama5d4Offset
}

func PmDdrcPid(x uint32) uint32 {
	return (x & PmDdrcPidMask) << PmDdrcPidOffset
}

// PMC (power management controller) register offsets
const (
	PmcSCER uint32 = 0x00 // system clock enable
	PmcSCDR uint32 = 0x04 // system clock disable
	PmcSCSR uint32 = 0x08 // system clock status

	CkgrUCKR uint32 = 0x1c // UTMI clock register

	PmcMCKR uint32 = 0x30 // master clock register

	PmcSR uint32 = 0x68 // status register
)

// PmcPCKR returns the offset of programmable clock register 0..3.
func PmcPCKR(n int) uint32 {
	return 0x40 + uint32(n)*4
}

// PMC register bits
const (
	PmcPCK0 uint32 = 1 << 8 // programmable clock 0 output enable, PCK1..3 follow

	PmcCSS     uint32 = 3 // programmable clock source selection mask
	PmcCSSSlow uint32 = 0 // slow oscillator source

	PmcUPLLEN uint32 = 1 << 16 // UTMI (USB) PLL enable, in CKGR_UCKR
	PmcLOCKB  uint32 = 1 << 2  // PLL B lock, in PMC_SR
)

// per-family USB host/device port clock bits in PMC_SCSR
const (
	Rm9200PmcUHP uint32 = 1 << 4
	Rm9200PmcUDP uint32 = 1 << 7

	Sam926xPmcUHP uint32 = 1 << 6
	Sam926xPmcUDP uint32 = 1 << 7
)

// MPDDRC peripheral ids, needed by the suspend routine to gate the
// controller clock on the sama5 parts
const (
	Sama5d3IdMpddrc uint32 = 49
	Sama5d4IdMpddrc uint32 = 16
)

// number of programmable clock channels checked before slow clock entry
const pmcProgrammableClocks = 4

// AT91RM9200 memory controller register offsets (SDRAMC lives inside the MC block)
const (
	Rm9200SdramcMR  uint32 = 0x90
	Rm9200SdramcSRR uint32 = 0x9c // self-refresh request
	Rm9200SdramcLPR uint32 = 0xa0 // low-power register
)

// AT91SAM9 SDRAM controller registers
const (
	SdramcLPR uint32 = 0x10

	SdramcLPCBMask        uint32 = 3
	SdramcLPCBSelfRefresh uint32 = 1
)

// DDR/SDR controller registers (at91sam9g45 and later, sama5 MPDDRC)
const (
	DdrsdrcLPR uint32 = 0x1c

	DdrsdrcLPCBMask        uint32 = 3
	DdrsdrcLPCBSelfRefresh uint32 = 1
)

// device tree compatible strings reported by the RAMC enumerator; these
// must stay in lockstep with the MemoryControllerKind picked by the
// variant initializers, the relocated routine trusts that pairing
const (
	CompatRm9200Sdramc  = "atmel,at91rm9200-sdramc"
	CompatSam9260Sdramc = "atmel,at91sam9260-sdramc"
	CompatSam9g45Ddramc = "atmel,at91sam9g45-ddramc"
	CompatSama5d3Ddramc = "atmel,sama5d3-ddramc"
)

// subsystem capability bits
const (
	capStandbyFn = iota
	capDeepSuspend
	capSecondaryRamc
	capCount
)
