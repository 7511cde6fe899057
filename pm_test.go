// Copyright 2026 Wei Tang. All rights reserved.
// Use of this source code is governed by a GNU-style
// license that can be found in the LICENSE file.

package at91pm

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("PowerManagement", func() {

	var (
		tp *testPlatform
		pm *PowerManagement
	)

	BeforeEach(func() {
		tp = newTestPlatform(CompatSam9g45Ddramc)

		var err error
		pm, err = Sam9g45PmInit(tp.config)

		Expect(err).NotTo(HaveOccurred())
	})

	Describe("ValidStates", func() {
		It("supports exactly ON, STANDBY and suspend-to-RAM", func() {
			Expect(pm.ValidStates()).To(Equal(
				[]SuspendState{SuspendOn, SuspendStandby, SuspendToRam}))

			Expect(pm.ValidState(SuspendToRam)).To(BeTrue())
			Expect(pm.ValidState(SuspendState(0x42))).To(BeFalse())
		})
	})

	Describe("Begin and End", func() {
		It("records any requested state and always succeeds", func() {
			Expect(pm.Begin(SuspendToRam)).To(Succeed())
			Expect(pm.EnteringSlowClock()).To(BeTrue())

			Expect(pm.Begin(SuspendState(0x7f))).To(Succeed())
			Expect(pm.EnteringSlowClock()).To(BeFalse())
		})

		It("resets the target state on End", func() {
			pm.Begin(SuspendToRam)
			pm.End()

			Expect(pm.EnteringSlowClock()).To(BeFalse())
		})
	})

	Describe("EnteringSlowClock", func() {
		It("is true only between Begin(SuspendToRam) and the cycle end", func() {
			Expect(pm.EnteringSlowClock()).To(BeFalse())

			pm.Begin(SuspendStandby)
			Expect(pm.EnteringSlowClock()).To(BeFalse())

			pm.Begin(SuspendToRam)
			Expect(pm.EnteringSlowClock()).To(BeTrue())

			pm.Enter(SuspendToRam)
			Expect(pm.EnteringSlowClock()).To(BeFalse())
		})

		It("is reset by an aborted enter as well", func() {
			tp.pmc.regs[CkgrUCKR] = PmcUPLLEN

			pm.Begin(SuspendToRam)
			pm.Enter(SuspendToRam)

			Expect(pm.EnteringSlowClock()).To(BeFalse())
		})
	})

	Describe("Enter", func() {
		Context("with state ON", func() {
			It("idles the cpu once and leaves clocks and DRAM alone", func() {
				Expect(pm.Enter(SuspendOn)).To(Succeed())

				Expect(tp.idle.idles).To(Equal(1))
				Expect(tp.pool.calls).To(BeEmpty())
				Expect(tp.cache.flushes).To(BeZero())
			})
		})

		Context("with state STANDBY", func() {
			It("invokes the relocated routine without the slow clock bit", func() {
				pm.Begin(SuspendStandby)
				Expect(pm.Enter(SuspendStandby)).To(Succeed())

				Expect(tp.pool.calls).To(HaveLen(1))
				Expect(tp.pool.calls[0].pmData & PmMode(PmSlowClock)).To(BeZero())
			})
		})

		Context("with state suspend-to-RAM", func() {
			It("invokes the routine with the slow clock bit set", func() {
				pm.Begin(SuspendToRam)
				Expect(pm.Enter(SuspendToRam)).To(Succeed())

				Expect(tp.pool.calls).To(HaveLen(1))
				Expect(tp.pool.calls[0].pmData & PmMode(PmSlowClock)).NotTo(BeZero())
			})

			It("passes the register block triple to the routine", func() {
				pm.Begin(SuspendToRam)
				pm.Enter(SuspendToRam)

				call := tp.pool.calls[0]
				Expect(call.pmc).To(BeIdenticalTo(RegisterBlock(tp.pmc)))
				Expect(call.ramc0).To(BeIdenticalTo(RegisterBlock(tp.ramc0)))
				Expect(call.ramc1).To(BeNil())
			})

			It("flushes caches before the routine and resumes the outer cache after", func() {
				pm.Begin(SuspendToRam)
				pm.Enter(SuspendToRam)

				Expect(tp.events).To(Equal([]string{
					"pinsSuspend",
					"flushAll",
					"outerDisable",
					"suspendFn(0x12)",
					"outerResume",
					"pinsResume",
				}))
			})

			It("aborts before touching caches when the clocks are unsafe", func() {
				tp.pmc.regs[PmcSR] = PmcLOCKB

				pm.Begin(SuspendToRam)
				Expect(pm.Enter(SuspendToRam)).To(Succeed())

				Expect(tp.pool.calls).To(BeEmpty())
				Expect(tp.cache.flushes).To(BeZero())
				Expect(tp.cache.outerDisables).To(BeZero())
				Expect(tp.pins.resumes).To(Equal(1))
				Expect(pm.EnteringSlowClock()).To(BeFalse())
			})
		})

		Context("with a bogus state", func() {
			It("does not invoke the routine and still resets to ON", func() {
				pm.Begin(SuspendState(0x42))
				Expect(pm.Enter(SuspendState(0x42))).To(Succeed())

				Expect(tp.pool.calls).To(BeEmpty())
				Expect(tp.idle.idles).To(BeZero())
				Expect(pm.EnteringSlowClock()).To(BeFalse())
				Expect(tp.pins.suspends).To(Equal(1))
				Expect(tp.pins.resumes).To(Equal(1))
			})
		})

		It("restores pin state on every path", func() {
			for _, state := range []SuspendState{SuspendOn, SuspendStandby,
				SuspendToRam, SuspendState(0x99)} {

				pm.Begin(state)
				pm.Enter(state)
				pm.End()
			}

			Expect(tp.pins.suspends).To(Equal(4))
			Expect(tp.pins.resumes).To(Equal(4))
			Expect(pm.EnteringSlowClock()).To(BeFalse())
		})
	})

	Describe("parameter word composition", func() {
		It("combines mode, controller kind, ddrc pid and the sama5d4 bit", func() {
			tp = newTestPlatform(CompatSama5d3Ddramc)

			pm, err := newPowerManagement(tp.config)
			Expect(err).NotTo(HaveOccurred())

			pm.dtRamc()

			pm.data.uhpUdpMask = Sam926xPmcUHP | Sam926xPmcUDP
			pm.data.memctrl = MemCtrlDDRSDR
			pm.data.ddrcPid = 42
			pm.data.isSama5d4 = true

			pm.pmInit()

			pm.Begin(SuspendToRam)
			pm.Enter(SuspendToRam)

			Expect(tp.pool.calls).To(HaveLen(1))

			want := PmMode(PmSlowClock) | uint32(MemCtrlDDRSDR) |
				PmDdrcPid(42) | PmIsSama5d4(PmSama5d4Bit)

			Expect(tp.pool.calls[0].pmData).To(Equal(want))
			Expect(tp.pool.calls[0].pmData).To(Equal(uint32(0x2a32)))
		})
	})

	Describe("without a retained memory device", func() {
		BeforeEach(func() {
			tp = newTestPlatform(CompatSam9g45Ddramc)
			tp.dt.pool = nil

			var err error
			pm, err = Sam9g45PmInit(tp.config)

			Expect(err).NotTo(HaveOccurred())
		})

		It("does not register suspend operations", func() {
			Expect(pm.DeepSuspendAvailable()).To(BeFalse())
			Expect(tp.framework.ops).To(BeNil())
		})

		It("still registers the cpuidle standby strategy", func() {
			Expect(tp.framework.standby).NotTo(BeNil())
		})

		It("aborts suspend-to-RAM before touching the caches", func() {
			pm.Begin(SuspendToRam)

			Expect(pm.Enter(SuspendToRam)).To(Succeed())

			Expect(tp.cache.flushes).To(BeZero())
			Expect(tp.cache.outerDisables).To(BeZero())
			Expect(pm.EnteringSlowClock()).To(BeFalse())
			Expect(tp.pins.resumes).To(Equal(1))
		})

		It("degrades STANDBY to a plain cpu idle", func() {
			pm.Begin(SuspendStandby)
			pm.Enter(SuspendStandby)

			Expect(tp.idle.idles).To(Equal(1))
			Expect(tp.cache.flushes).To(BeZero())
		})
	})

	Describe("framework registration", func() {
		It("hands the suspend operations to the framework when the routine loaded", func() {
			Expect(pm.DeepSuspendAvailable()).To(BeTrue())
			Expect(tp.framework.ops).To(BeIdenticalTo(SuspendOperations(pm)))
		})

		It("registers a working standby strategy with the cpuidle driver", func() {
			Expect(tp.framework.standby).NotTo(BeNil())

			tp.ramc0.regs[DdrsdrcLPR] = 0x10

			tp.framework.standby()

			Expect(tp.idle.idles).To(Equal(1))
			Expect(tp.ramc0.writes).To(Equal([]regWrite{
				{DdrsdrcLPR, 0x11},
				{DdrsdrcLPR, 0x10},
			}))
		})
	})
})
