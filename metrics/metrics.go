package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	spsc "code.cloudfoundry.org/go-spsc"
)

func newCounter(name, help, ring, role string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   "spsc",
		Subsystem:   "ring",
		Name:        name,
		ConstLabels: prometheus.Labels{"ring": ring, "role": role},
		Help:        help,
	})
}

func newGauge(name, help, ring, role string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   "spsc",
		Subsystem:   "ring",
		Name:        name,
		ConstLabels: prometheus.Labels{"ring": ring, "role": role},
		Help:        help,
	})
}

func register(reg prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Producer wraps an spsc.Producer and counts its traffic.
type Producer[T any] struct {
	p *spsc.Producer[T]

	pushes      prometheus.Counter
	full        prometheus.Counter
	size        prometheus.Gauge
	utilization prometheus.Gauge
	capacity    float64
}

// InstrumentProducer registers producer-side collectors with reg under the
// given ring name and returns the wrapped handle. A registration failure is
// returned instead of silently dropping observability.
func InstrumentProducer[T any](p *spsc.Producer[T], reg prometheus.Registerer, ring string) (*Producer[T], error) {
	m := &Producer[T]{
		p:           p,
		pushes:      newCounter("pushes_total", "Total number of values pushed into the ring.", ring, "producer"),
		full:        newCounter("full_total", "Total number of TryPush calls rejected because the ring was full.", ring, "producer"),
		size:        newGauge("size", "Number of elements in the ring after the last operation.", ring, "producer"),
		utilization: newGauge("utilization", "Ring occupancy as a fraction of capacity (0.0 to 1.0).", ring, "producer"),
		capacity:    float64(p.Capacity()),
	}

	if err := register(reg, m.pushes, m.full, m.size, m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// Push writes v through the wrapped handle. The caller contract is the same
// as spsc.Producer.Push: Full must have returned false.
func (m *Producer[T]) Push(v T) {
	m.p.Push(v)
	m.record()
}

// TryPush pushes v unless the ring is full, counting rejected attempts.
func (m *Producer[T]) TryPush(v T) error {
	if err := m.p.TryPush(v); err != nil {
		m.full.Inc()
		return err
	}
	m.record()
	return nil
}

func (m *Producer[T]) record() {
	m.pushes.Inc()
	size := m.p.Size()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / m.capacity)
}

// Size returns the number of elements currently in the ring.
func (m *Producer[T]) Size() int {
	return m.p.Size()
}

// Full reports whether the ring is at capacity.
func (m *Producer[T]) Full() bool {
	return m.p.Full()
}

// Release unbinds the wrapped handle. It must be the last call on the
// wrapper.
func (m *Producer[T]) Release() {
	m.p.Release()
}

// Consumer wraps an spsc.Consumer and counts its traffic.
type Consumer[T any] struct {
	c *spsc.Consumer[T]

	pops        prometheus.Counter
	empty       prometheus.Counter
	peeks       prometheus.Counter
	size        prometheus.Gauge
	utilization prometheus.Gauge
	capacity    float64
}

// InstrumentConsumer registers consumer-side collectors with reg under the
// given ring name and returns the wrapped handle. A registration failure is
// returned instead of silently dropping observability.
func InstrumentConsumer[T any](c *spsc.Consumer[T], reg prometheus.Registerer, ring string) (*Consumer[T], error) {
	m := &Consumer[T]{
		c:           c,
		pops:        newCounter("pops_total", "Total number of values popped from the ring.", ring, "consumer"),
		empty:       newCounter("empty_total", "Total number of TryPop calls rejected because the ring was empty.", ring, "consumer"),
		peeks:       newCounter("peeks_total", "Total number of Front calls.", ring, "consumer"),
		size:        newGauge("size", "Number of elements in the ring after the last operation.", ring, "consumer"),
		utilization: newGauge("utilization", "Ring occupancy as a fraction of capacity (0.0 to 1.0).", ring, "consumer"),
		capacity:    float64(c.Capacity()),
	}

	if err := register(reg, m.pops, m.empty, m.peeks, m.size, m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// Pop removes and returns the oldest element. The caller contract is the
// same as spsc.Consumer.Pop: Empty must have returned false.
func (m *Consumer[T]) Pop() T {
	v := m.c.Pop()
	m.record()
	return v
}

// TryPop pops the oldest element unless the ring is empty, counting
// rejected attempts.
func (m *Consumer[T]) TryPop() (T, error) {
	v, err := m.c.TryPop()
	if err != nil {
		m.empty.Inc()
		return v, err
	}
	m.record()
	return v, nil
}

// Front returns a pointer to the oldest element, or nil when the ring is
// empty.
func (m *Consumer[T]) Front() *T {
	m.peeks.Inc()
	return m.c.Front()
}

func (m *Consumer[T]) record() {
	m.pops.Inc()
	size := m.c.Size()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / m.capacity)
}

// Size returns the number of elements currently in the ring.
func (m *Consumer[T]) Size() int {
	return m.c.Size()
}

// Empty reports whether the ring holds no elements.
func (m *Consumer[T]) Empty() bool {
	return m.c.Empty()
}

// Release unbinds the wrapped handle. It must be the last call on the
// wrapper.
func (m *Consumer[T]) Release() {
	m.c.Release()
}
