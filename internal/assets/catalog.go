// Package assets loads the optional sprite images of the window host.
//
// Every asset is tracked with its own Status. Loading happens in the
// background; renderers poll the catalog and draw shapes for anything that is
// not Ready, so a missing or broken file never stops the game.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"
)

// Status is the load state of one asset.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Sprite names. Files are expected as <name>.png in the asset directory.
const (
	Background = "background"
	Ground     = "ground"
	PipeTop    = "pipeTop"
	PipeBottom = "pipeBottom"
)

// PlayerFrames and PlayerJumpFrames are the animation frame counts.
const (
	PlayerFrames     = 4
	PlayerJumpFrames = 2
)

// PlayerFrame returns the name of run animation frame i.
func PlayerFrame(i int) string { return fmt.Sprintf("player%d", i) }

// PlayerJumpFrame returns the name of jump animation frame i.
func PlayerJumpFrame(i int) string { return fmt.Sprintf("playerJump%d", i) }

// DefaultNames lists every sprite the window host knows how to use.
func DefaultNames() []string {
	names := make([]string, 0, PlayerFrames+PlayerJumpFrames+4)
	for i := 0; i < PlayerFrames; i++ {
		names = append(names, PlayerFrame(i))
	}
	for i := 0; i < PlayerJumpFrames; i++ {
		names = append(names, PlayerJumpFrame(i))
	}
	return append(names, PipeTop, PipeBottom, Background, Ground)
}

type entry struct {
	status Status
	img    image.Image
	err    error
}

// Catalog holds the images and their statuses. It is safe for concurrent use.
type Catalog struct {
	mu      sync.Mutex
	fsys    fs.FS
	names   []string
	entries map[string]*entry
	done    chan struct{}
	logger  *log.Logger
}

// NewCatalog registers names as Loading. A nil fsys means there is no asset
// directory; Load then marks everything Failed.
func NewCatalog(fsys fs.FS, logger *log.Logger, names ...string) *Catalog {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Catalog{
		fsys:    fsys,
		names:   names,
		entries: make(map[string]*entry, len(names)),
		done:    make(chan struct{}),
		logger:  logger,
	}
	for _, n := range names {
		c.entries[n] = &entry{status: StatusLoading}
	}
	return c
}

// Load decodes every asset in the background and returns immediately.
// Cancelling ctx marks the assets that have not finished as Failed.
func (c *Catalog) Load(ctx context.Context) {
	var wg sync.WaitGroup
	for _, name := range c.names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := c.decode(ctx, name)
			c.settle(name, img, err)
		}()
	}
	go func() {
		wg.Wait()
		close(c.done)
	}()
}

func (c *Catalog) decode(ctx context.Context, name string) (image.Image, error) {
	if c.fsys == nil {
		return nil, fmt.Errorf("assets: no asset directory")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := c.fsys.Open(name + ".png")
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

func (c *Catalog) settle(name string, img image.Image, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entries[name]
	if err != nil {
		e.status, e.err = StatusFailed, err
		c.logger.Debug("asset unavailable, using shapes", "asset", name, "err", err)
		return
	}
	e.status, e.img = StatusReady, img
}

// Done is closed once every asset has settled.
func (c *Catalog) Done() <-chan struct{} {
	return c.done
}

// Status returns the state of name. Unknown names are Failed.
func (c *Catalog) Status(name string) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[name]; ok {
		return e.status
	}
	return StatusFailed
}

// Err returns why name failed to load, if it did.
func (c *Catalog) Err(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[name]; ok {
		return e.err
	}
	return fmt.Errorf("assets: unknown asset %q", name)
}

// Image returns the decoded image if name is Ready.
func (c *Catalog) Image(name string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[name]
	if !ok || e.status != StatusReady {
		return nil, false
	}
	return e.img, true
}

// Progress returns how many assets have settled out of the total.
func (c *Catalog) Progress() (settled, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.status != StatusLoading {
			settled++
		}
	}
	return settled, len(c.entries)
}

// Settled reports whether no asset is still loading.
func (c *Catalog) Settled() bool {
	settled, total := c.Progress()
	return settled == total
}
