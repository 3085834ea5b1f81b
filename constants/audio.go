package constants

import "time"

// Tick Sound
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = time.Second / 10

	// TickToneHz is the pitch of the per-second tick
	TickToneHz = 880

	// TickToneDuration is the length of the per-second tick
	TickToneDuration = 50 * time.Millisecond
)
