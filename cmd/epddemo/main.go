// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// epddemo draws a set of test scenes on a Waveshare e-paper panel: the four
// rotations, an analog clock, text in several sizes and an image, then clears
// the panel and puts it to sleep.
//
// With -preview the scenes are rendered to the terminal instead.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GermanBionicSystems/epaper/canvas"
)

var (
	configFile  = flag.String("config_file", "", "configuration `filename`; built-in defaults when empty")
	debug       = flag.Bool("debug", false, "whether to log extra information")
	httpFlag    = flag.String("http", "", "`address` on which to serve metrics; disabled when empty")
	interval    = flag.Duration("interval", 0, "if non-zero, `period` at which to repeat the scenes")
	pause       = flag.Duration("pause", 5*time.Second, "how long each scene stays up")
	previewFlag = flag.Bool("preview", false, "whether to render to the terminal instead of the panel")
)

func debugf(format string, args ...interface{}) {
	if *debug {
		log.Printf(format, args...)
	}
}

func main() {
	flag.Parse()

	cfg, err := parseConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	scenes, err := newScenes(cfg)
	if err != nil {
		log.Fatalf("newScenes: %v", err)
	}
	b, err := newBackend(cfg, *previewFlag, nil)
	if err != nil {
		log.Fatalf("newBackend: %v", err)
	}

	var wg sync.WaitGroup
	ctx, cancel := context.WithCancel(context.Background())

	// Handle signals.
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt)

		sig := <-sigc
		log.Printf("Caught signal %v; shutting down gracefully", sig)
		cancel()
	}()

	if *httpFlag != "" {
		http.Handle("/metrics", promhttp.Handler())
		httpServer := &http.Server{}
		wg.Add(1)
		go func() {
			defer wg.Done()

			l, err := net.Listen("tcp", *httpFlag)
			if err != nil {
				log.Printf("net.Listen(_, %q): %v", *httpFlag, err)
				cancel()
				return
			}

			log.Printf("Serving HTTP on %s", l.Addr())
			err = httpServer.Serve(l)
			if err != http.ErrServerClosed {
				log.Printf("http.Serve: %v", err)
				cancel()
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()

			<-ctx.Done()
			httpServer.Shutdown(context.Background())
		}()
	}

	d := &demo{
		cfg:    cfg,
		b:      b,
		scenes: scenes,
		pause:  *pause,
		now:    time.Now,
	}
	if err := d.run(ctx, *interval); err != nil && err != context.Canceled {
		log.Printf("Demo failed: %v", err)
	}
	cancel()
	wg.Wait()
	if err := b.close(); err != nil {
		log.Printf("Closing backend: %v", err)
	}
	log.Printf("epddemo done")
}

type demo struct {
	cfg    Config
	b      *backend
	scenes []scene
	pause  time.Duration
	now    func() time.Time
}

// run shows every scene once, then again each interval until ctx is done.
func (d *demo) run(ctx context.Context, interval time.Duration) error {
	for {
		if err := d.cycle(ctx); err != nil {
			return err
		}
		if interval <= 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// cycle wakes a panel, shows the scenes and puts it back to sleep, even when
// interrupted.
func (d *demo) cycle(ctx context.Context) (err error) {
	p, err := d.b.open()
	if err != nil {
		return err
	}
	if err := p.Init(); err != nil {
		countError(err)
		return err
	}
	defer func() {
		if serr := p.Sleep(); serr != nil {
			countError(serr)
			if err == nil {
				err = serr
			}
		}
	}()

	opts := d.cfg.opts()
	c, err := canvas.New(opts.Width, opts.Height, canvas.Mono)
	if err != nil {
		return err
	}
	c.SetRotation(d.cfg.rotation())

	for i, s := range d.scenes {
		c.Clear(canvas.White)
		s.draw(c, d.now())

		debugf("Displaying scene %q", s.name)
		start := time.Now()
		if err := p.UpdateAndDisplayFrame(c.Buffer()); err != nil {
			countError(err)
			return err
		}
		refreshSeconds.Observe(time.Since(start).Seconds())
		framesDisplayed.WithLabelValues(s.name).Inc()

		if i == len(d.scenes)-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.pause):
		}
	}
	return nil
}
