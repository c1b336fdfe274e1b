package constant

import "time"

const (
	APP_NAME      = "aqplay"
	WINDOW_TITLE  = APP_NAME
	WINDOW_WIDTH  = 640
	WINDOW_HEIGHT = 480
	// Polls for a screen refresh at least this often; keep below 1/fps.
	REFRESH_INTERVAL = 10 * time.Millisecond
	AUDIO_FREQ       = 48000
	CHANNELS         = 2
	AUDIO_SAMPLES    = 1024
	AUDIO_QUEUE_SIZE = 4
	// QUIT_EVENT_OFFSET is added to the first user event type to form the
	// application quit event.
	QUIT_EVENT_OFFSET = 2
)
