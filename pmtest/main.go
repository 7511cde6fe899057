// Copyright 2026 Wei Tang. All rights reserved.
// Use of this source code is governed by a GNU-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/weety/at91pm"
)

var (
	logger *logrus.Logger
)

// simRegisterBlock is a plain MMIO register file.
type simRegisterBlock struct {
	name string
	regs map[uint32]uint32
}

func newSimRegisterBlock(name string) *simRegisterBlock {
	return &simRegisterBlock{name: name, regs: make(map[uint32]uint32)}
}

func (b *simRegisterBlock) ReadRegister(offset uint32) uint32 {
	return b.regs[offset]
}

func (b *simRegisterBlock) WriteRegister(offset uint32, value uint32) {
	logger.Debugf("%s: [0x%02x] <- 0x%08x", b.name, offset, value)
	b.regs[offset] = value
}

type simDeviceTree struct {
	compatible string
	ramc       *simRegisterBlock
	pool       at91pm.RetainedMemoryPool
}

func (dt *simDeviceTree) EachRamc(fn func(compatible string, base at91pm.RegisterBlock)) {
	fn(dt.compatible, dt.ramc)
}

func (dt *simDeviceTree) SramPool() at91pm.RetainedMemoryPool {
	return dt.pool
}

// simSramPool emulates a 16 KiB mmio-sram gen pool at a fixed
// physical base.
type simSramPool struct {
	next uintptr
	left uint32
}

const simSramBase = 0x00300000
const simSramSize = 16 * 1024

func newSimSramPool() *simSramPool {
	return &simSramPool{next: simSramBase, left: simSramSize}
}

func (p *simSramPool) Alloc(size uint32) (uintptr, error) {
	if size > p.left {
		return 0, at91pm.NewPmError("sram pool exhausted", at91pm.ErrorResourceUnavailable)
	}

	base := p.next
	p.next += uintptr(size)
	p.left -= size

	logger.Debugf("sram: allocated %d bytes at 0x%08x", size, base)
	return base, nil
}

func (p *simSramPool) VirtToPhys(virt uintptr) at91pm.PhysAddr {
	return at91pm.PhysAddr(virt)
}

func (p *simSramPool) MapExec(pbase at91pm.PhysAddr, size uint32) (at91pm.ExecRegion, error) {
	logger.Debugf("sram: executable mapping of 0x%08x (%d bytes)", pbase, size)
	return &simExecRegion{}, nil
}

// simExecRegion stands in for the executable SRAM mapping: LoadCode
// returns a Go function modelling what the relocated routine does to
// the register blocks it is handed.
type simExecRegion struct{}

func (r *simExecRegion) LoadCode(image []byte) at91pm.SuspendFunc {
	logger.Debugf("sram: copied %d byte routine image", len(image))

	return func(pmc at91pm.RegisterBlock, ramc0 at91pm.RegisterBlock,
		ramc1 at91pm.RegisterBlock, pmData uint32) {

		logger.Infof("suspend routine invoked, pm data 0x%08x", pmData)

		memctrl := pmData & at91pm.PmMemtypeMask

		switch at91pm.MemoryControllerKind(memctrl) {
		case at91pm.MemCtrlDDRSDR:
			lpr := ramc0.ReadRegister(at91pm.DdrsdrcLPR)
			ramc0.WriteRegister(at91pm.DdrsdrcLPR,
				(lpr&^at91pm.DdrsdrcLPCBMask)|at91pm.DdrsdrcLPCBSelfRefresh)

		case at91pm.MemCtrlSDRAMC:
			lpr := ramc0.ReadRegister(at91pm.SdramcLPR)
			ramc0.WriteRegister(at91pm.SdramcLPR,
				(lpr&^at91pm.SdramcLPCBMask)|at91pm.SdramcLPCBSelfRefresh)

		case at91pm.MemCtrlMC:
			ramc0.WriteRegister(at91pm.Rm9200SdramcSRR, 1)
		}

		if (pmData>>at91pm.PmModeOffset)&at91pm.PmModeMask != 0 {
			logger.Info("master clock switched to slow oscillator, waiting for wakeup")

			mckr := pmc.ReadRegister(at91pm.PmcMCKR)
			pmc.WriteRegister(at91pm.PmcMCKR, mckr&^uint32(3))
			pmc.WriteRegister(at91pm.PmcMCKR, mckr)

			logger.Info("wakeup interrupt, main oscillator restarted")
		}
	}
}

type simCache struct{}

func (simCache) FlushAll()     { logger.Debug("cache: flush all") }
func (simCache) OuterDisable() { logger.Debug("cache: outer disable") }
func (simCache) OuterResume()  { logger.Debug("cache: outer resume") }

type simPins struct{}

func (simPins) Suspend() { logger.Debug("pinctrl: gpio suspend") }
func (simPins) Resume()  { logger.Debug("pinctrl: gpio resume") }

type simIdler struct{}

func (simIdler) Idle() { logger.Debug("cpu: wait for interrupt") }

type simFramework struct {
	ops     at91pm.SuspendOperations
	standby at91pm.StandbyFunc
}

func (f *simFramework) RegisterSuspendOps(ops at91pm.SuspendOperations) {
	logger.Info("framework: suspend operations registered")
	f.ops = ops
}

func (f *simFramework) RegisterCpuIdle(standby at91pm.StandbyFunc) {
	logger.Info("framework: cpuidle standby strategy registered")
	f.standby = standby
}

var variants = map[string]struct {
	compatible string
	init       func(*at91pm.PlatformConfig) (*at91pm.PowerManagement, error)
}{
	"rm9200":  {at91pm.CompatRm9200Sdramc, at91pm.Rm9200PmInit},
	"sam9260": {at91pm.CompatSam9260Sdramc, at91pm.Sam9260PmInit},
	"sam9g45": {at91pm.CompatSam9g45Ddramc, at91pm.Sam9g45PmInit},
	"sam9x5":  {at91pm.CompatSam9g45Ddramc, at91pm.Sam9x5PmInit},
	"sama5d3": {at91pm.CompatSama5d3Ddramc, at91pm.Sama5d3PmInit},
	"sama5d4": {at91pm.CompatSama5d3Ddramc, at91pm.Sama5d4PmInit},
}

func initLogger() {
	formatter := &prefixed.TextFormatter{
		DisableColors:   false,
		TimestampFormat: "15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
	}

	logger = logrus.New()

	logger.SetFormatter(formatter)
	logger.SetOutput(os.Stdout)
}

func runCycle(framework *simFramework, state at91pm.SuspendState, name string) {
	logger.Infof("---- entering %s ----", name)

	if !framework.ops.(*at91pm.PowerManagement).ValidState(state) {
		logger.Errorf("state %d not supported", state)
		return
	}

	framework.ops.Begin(state)

	// a wake capable USB host driver would query this before its own
	// suspend callback
	logger.Infof("drivers see entering slow clock: %v",
		framework.ops.(*at91pm.PowerManagement).EnteringSlowClock())

	framework.ops.Enter(state)
	framework.ops.End()
}

func main() {
	initLogger()
	at91pm.SetLogger(logger)

	logger.Info("Welcome to the at91pm suspend cycle simulator...")

	flagLogLevel := flag.Int("LogLevel", int(logrus.DebugLevel), "Logging verbosity [0 - 7]")
	flagVariant := flag.String("Variant", "sama5d3", "SoC variant [rm9200|sam9260|sam9g45|sam9x5|sama5d3|sama5d4]")
	flagUsbActive := flag.Bool("UsbActive", false, "Leave the USB port clocks on to provoke a validation abort")
	flagNoSram := flag.Bool("NoSram", false, "Simulate a platform without retained SRAM")

	flag.Parse()

	logger.SetLevel(logrus.Level(*flagLogLevel))

	variant, ok := variants[*flagVariant]

	if !ok {
		logger.Fatalf("unknown variant %s", *flagVariant)
	}

	pmc := newSimRegisterBlock("pmc")
	ramc := newSimRegisterBlock("ramc0")

	dt := &simDeviceTree{
		compatible: variant.compatible,
		ramc:       ramc,
	}

	if !*flagNoSram {
		dt.pool = newSimSramPool()
	}

	if *flagUsbActive {
		pmc.regs[at91pm.PmcSCSR] = at91pm.Sam926xPmcUHP | at91pm.Sam926xPmcUDP
	}

	framework := &simFramework{}

	config := at91pm.NewPlatformConfig(pmc, dt, simCache{}, simPins{}, simIdler{}, framework)

	pm, err := variant.init(config)

	if err != nil {
		logger.Fatal(err)
	}

	logger.Infof("deep suspend available: %v", pm.DeepSuspendAvailable())

	if framework.standby != nil {
		logger.Info("---- cpuidle deepest state ----")
		framework.standby()
	}

	if framework.ops == nil {
		logger.Warn("no suspend operations registered, nothing further to drive")
		return
	}

	runCycle(framework, at91pm.SuspendStandby, "standby")
	runCycle(framework, at91pm.SuspendToRam, "suspend-to-RAM")

	logger.Info("simulation complete")
}
