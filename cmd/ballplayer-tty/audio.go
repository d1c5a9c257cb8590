package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	blipFrequency = 660
	blipLength    = 40 * time.Millisecond
	blipCooldown  = 80 * time.Millisecond
)

// Blipper plays a short tone when enemies bounce. It is silent until Init succeeds.
type Blipper struct {
	sampleRate  beep.SampleRate
	initialized bool
	lastBlip    time.Time
}

func (b *Blipper) Init() error {
	b.sampleRate = beep.SampleRate(44100)
	if err := speaker.Init(b.sampleRate, b.sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	b.initialized = true
	return nil
}

// Blip plays the bounce tone unless one was started less than blipCooldown ago.
func (b *Blipper) Blip(now time.Time) {
	if !b.initialized || now.Sub(b.lastBlip) < blipCooldown {
		return
	}
	b.lastBlip = now

	sine, err := generators.SineTone(b.sampleRate, blipFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(b.sampleRate.N(blipLength), sine))
}

func (b *Blipper) Close() {
	if b.initialized {
		speaker.Close()
		b.initialized = false
	}
}
