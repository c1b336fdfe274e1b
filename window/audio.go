package window

import (
	"fmt"
	"sync"
)

// AudioQueue buffers audio periods between a producer and the device
// callback. When full, the oldest period is discarded.
type AudioQueue struct {
	periodLength int
	capacity     int
	buffers      [][]float32
	mtx          sync.Mutex
}

func NewAudioQueue(periodLength, capacity int) *AudioQueue {
	if capacity <= 0 {
		capacity = 1
	}
	return &AudioQueue{
		periodLength: periodLength,
		capacity:     capacity,
		buffers:      [][]float32{},
	}
}

func (q *AudioQueue) PeriodLength() int {
	return q.periodLength
}

func (q *AudioQueue) Push(buf []float32) error {
	if len(buf) != q.periodLength {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidAudioBuffer, q.periodLength, len(buf))
	}

	period := make([]float32, len(buf))
	copy(period, buf)

	q.mtx.Lock()
	defer q.mtx.Unlock()

	if len(q.buffers) >= q.capacity {
		q.buffers = q.buffers[1:] // Discard the old one
	}
	q.buffers = append(q.buffers, period)
	return nil
}

func (q *AudioQueue) Len() int {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	return len(q.buffers)
}

// Fill copies the oldest period into dst, or silence if nothing is queued.
// It is called from the audio device thread.
func (q *AudioQueue) Fill(dst []float32) {
	q.mtx.Lock()
	var src []float32
	if len(q.buffers) > 0 {
		src = q.buffers[0]
		q.buffers = q.buffers[1:]
	}
	q.mtx.Unlock()

	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}
