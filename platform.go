// Copyright 2026 Wei Tang. All rights reserved.
// Use of this source code is governed by a GNU-style
// license that can be found in the LICENSE file.

// this code is mainly inspired and based on the linux kernel AT91
// power management code, for detailed information see

// https://git.kernel.org/pub/scm/linux/kernel/git/torvalds/linux.git/tree/arch/arm/mach-at91

package at91pm

// PhysAddr is a physical address inside the retained on-chip memory.
type PhysAddr uint64

// RegisterBlock is a mapped MMIO register block. Offsets are byte
// offsets from the block base, accesses are 32 bit wide.
type RegisterBlock interface {
	ReadRegister(offset uint32) uint32
	WriteRegister(offset uint32, value uint32)
}

// DeviceTree enumerates the hardware description for this subsystem.
// Implemented by the platform integration layer, normally on top of a
// flattened device tree walk.
type DeviceTree interface {
	// EachRamc calls fn once per discovered memory-controller node, in
	// discovery order, with its compatible string and mapped register
	// block. A nil block for a matched node is a mapping failure the
	// subsystem treats as fatal.
	EachRamc(fn func(compatible string, base RegisterBlock))

	// SramPool returns the allocator of the first retained on-chip
	// memory device, or nil when the platform has none.
	SramPool() RetainedMemoryPool
}

// RetainedMemoryPool allocates from on-chip SRAM that keeps its
// content and stays accessible while the master clock is off.
type RetainedMemoryPool interface {
	Alloc(size uint32) (uintptr, error)
	VirtToPhys(virt uintptr) PhysAddr
	MapExec(pbase PhysAddr, size uint32) (ExecRegion, error)
}

// ExecRegion is an executable mapping of a physical SRAM range.
type ExecRegion interface {
	// LoadCode copies the routine image into the region and returns
	// the entry point bound to the region base.
	LoadCode(image []byte) SuspendFunc
}

// SuspendFunc is the calling contract of the relocated suspend
// routine: the PMC block, one or two RAM controller blocks (ramc1 may
// be nil) and the parameter word built from the platform data. The
// call blocks until the hardware has resumed. The routine touches
// nothing outside retained memory and the passed register blocks.
type SuspendFunc func(pmc RegisterBlock, ramc0 RegisterBlock, ramc1 RegisterBlock, pmData uint32)

// StandbyFunc is one platform specific low-power refresh strategy,
// handed to the cpuidle driver as its deepest idle state.
type StandbyFunc func()

// CacheController flushes and gates the data caches around the
// suspend routine invocation.
type CacheController interface {
	FlushAll()
	OuterDisable()
	OuterResume()
}

// PinController saves and restores GPIO pin state across a suspend
// cycle.
type PinController interface {
	Suspend()
	Resume()
}

// CpuIdler executes a single CPU idle operation (wait for interrupt).
type CpuIdler interface {
	Idle()
}

// SuspendOperations is the lifecycle contract exposed to the hosting
// suspend framework. The framework serializes a whole cycle
// (Begin -> device suspend -> Enter -> device resume -> End) relative
// to normal execution, the subsystem is never reentered.
type SuspendOperations interface {
	ValidStates() []SuspendState
	Begin(state SuspendState) error
	Enter(state SuspendState) error
	End()
}

// Framework receives the capability registrations at init. Both hooks
// are optional, a nil Framework skips registration.
type Framework interface {
	RegisterSuspendOps(ops SuspendOperations)
	RegisterCpuIdle(standby StandbyFunc)
}

// PlatformConfig collects the external collaborators a variant
// initializer wires the subsystem to.
type PlatformConfig struct {
	pmc       RegisterBlock
	dt        DeviceTree
	cache     CacheController
	pins      PinController
	idle      CpuIdler
	framework Framework
}

func NewPlatformConfig(pmc RegisterBlock, dt DeviceTree, cache CacheController,
	pins PinController, idle CpuIdler, framework Framework) *PlatformConfig {

	config := &PlatformConfig{
		pmc:       pmc,
		dt:        dt,
		cache:     cache,
		pins:      pins,
		idle:      idle,
		framework: framework,
	}

	return config
}

func (c *PlatformConfig) check() error {
	if c.pmc == nil {
		return NewPmError("platform config has no PMC register block", ErrorConfig)
	}

	if c.dt == nil {
		return NewPmError("platform config has no device tree enumerator", ErrorConfig)
	}

	if c.cache == nil || c.pins == nil || c.idle == nil {
		return NewPmError("platform config misses a cache, pin or idle collaborator", ErrorConfig)
	}

	return nil
}
