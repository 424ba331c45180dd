package spsc_test

import (
	spsc "code.cloudfoundry.org/go-spsc"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ring", func() {
	It("holds the requested capacity", func() {
		r, err := spsc.New[int](100)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Capacity()).To(Equal(100))
	})

	It("rejects a zero capacity", func() {
		_, err := spsc.New[int](0)
		Expect(err).To(MatchError(spsc.ErrInvalidCapacity))
	})

	It("rejects a negative capacity", func() {
		_, err := spsc.New[int](-1)
		Expect(err).To(MatchError(spsc.ErrInvalidCapacity))
	})
})
