package spsc_test

import (
	"time"

	spsc "code.cloudfoundry.org/go-spsc"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Consumer", func() {
	var (
		ring *spsc.Ring[string]
		p    *spsc.Producer[string]
		c    *spsc.Consumer[string]
	)

	BeforeEach(func() {
		var err error
		ring, err = spsc.New[string](3)
		Expect(err).NotTo(HaveOccurred())

		p = spsc.NewProducer(ring)
		c = spsc.NewConsumer(ring)
	})

	AfterEach(func() {
		p.Release()
		c.Release()
	})

	It("starts empty", func() {
		Expect(c.Empty()).To(BeTrue())
		Expect(c.Size()).To(Equal(0))
	})

	It("round-trips a single value", func() {
		p.Push("a")

		Expect(c.Empty()).To(BeFalse())
		Expect(c.Pop()).To(Equal("a"))
		Expect(c.Size()).To(Equal(0))
	})

	It("returns values in push order", func() {
		p.Push("a")
		p.Push("b")
		p.Push("c")

		Expect(c.Pop()).To(Equal("a"))
		Expect(c.Pop()).To(Equal("b"))
		Expect(c.Pop()).To(Equal("c"))
	})

	It("keeps FIFO order across the wraparound", func() {
		p.Push("a")
		p.Push("b")
		p.Push("c")

		Expect(c.Pop()).To(Equal("a"))
		p.Push("d")

		Expect(c.Pop()).To(Equal("b"))
		Expect(c.Pop()).To(Equal("c"))
		Expect(c.Pop()).To(Equal("d"))
		Expect(c.Empty()).To(BeTrue())
	})

	Describe("Front", func() {
		It("returns nil when the ring is empty", func() {
			Expect(c.Front()).To(BeNil())
		})

		It("references the oldest element without removing it", func() {
			p.Push("a")
			p.Push("b")

			front := c.Front()
			Expect(front).NotTo(BeNil())
			Expect(*front).To(Equal("a"))
			Expect(c.Size()).To(Equal(2))

			Expect(c.Pop()).To(Equal("a"))
		})
	})

	Describe("TryPop", func() {
		It("returns ErrEmpty when the ring is empty", func() {
			_, err := c.TryPop()
			Expect(err).To(MatchError(spsc.ErrEmpty))
		})

		It("pops the oldest value otherwise", func() {
			p.Push("a")

			v, err := c.TryPop()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("a"))
		})
	})

	Describe("binding", func() {
		It("blocks a second consumer until the first is released", func() {
			bound := make(chan *spsc.Consumer[string], 1)
			go func() {
				bound <- spsc.NewConsumer(ring, spsc.WithBindBackoff(time.Millisecond))
			}()

			Consistently(bound, 100*time.Millisecond).ShouldNot(Receive())

			c.Release()

			var second *spsc.Consumer[string]
			Eventually(bound).Should(Receive(&second))

			// Hand the live handle to AfterEach.
			c = second
		})
	})
})
