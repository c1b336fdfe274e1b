package render

// FrameQueue passes frames from one producer goroutine to the refresh loop.
// Neither side ever blocks.
type FrameQueue struct {
	frames chan *Frame
}

func NewFrameQueue(size int) *FrameQueue {
	if size <= 0 {
		size = 1
	}
	return &FrameQueue{frames: make(chan *Frame, size)}
}

// TryPush enqueues frame and reports false if the queue is full.
func (q *FrameQueue) TryPush(frame *Frame) bool {
	select {
	case q.frames <- frame:
		return true
	default:
		return false
	}
}

func (q *FrameQueue) NextFrame() (*Frame, bool) {
	select {
	case frame := <-q.frames:
		return frame, true
	default:
		return nil, false
	}
}

func (q *FrameQueue) Len() int {
	return len(q.frames)
}
