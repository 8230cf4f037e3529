// Package image implements the image block tool: an image element plus
// editable caption, width, alt, license and link fields, kept in sync with
// a single persisted record.
package image

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"constructor-script-editor/pkg/logger"
	"constructor-script-editor/pkg/toolsdk"
)

// ToolType is the identifier the tool registers under.
const ToolType = "image"

// Settings carries everything needed to construct a Tool.
type Settings struct {
	Host     toolsdk.Host
	Data     Record
	ReadOnly bool
	// Loader resolves image sources; DefaultLoader is used when nil.
	Loader Loader
	// Logger overrides the host's logger when set.
	Logger toolsdk.Logger
}

// Tool edits one image block. It renders the block's element tree, funnels
// manual edits, drops, pastes and programmatic assignments into a single
// record, and serializes the live tree back into that record on save.
type Tool struct {
	*toolsdk.BaseTool

	mu       sync.Mutex
	id       string
	record   Record
	insertAt int
	loader   Loader
	log      toolsdk.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	disposed bool

	loadGen  int
	loadDone chan struct{}

	tunes []Tune

	nodes nodeSet
}

// New creates a tool seeded with data. Empty record fields get their
// defaults and the stretched tune is registered as the one built-in toggle.
func New(s Settings) *Tool {
	base := toolsdk.NewBaseTool(ToolType, s.Host, s.ReadOnly)

	load := s.Loader
	if load == nil {
		load = DefaultLoader{}
	}

	log := s.Logger
	if log == nil && s.Host != nil {
		log = s.Host.Logger()
	}
	if log == nil {
		log = logger.NewToolLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &Tool{
		BaseTool: base,
		id:       uuid.New().String(),
		record:   s.Data.withDefaults(),
		insertAt: base.CurrentBlockIndex() + 1,
		loader:   load,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
	t.tunes = []Tune{{Name: StretchedTune, Effect: t.stretchBlock}}
	return t
}

// ID returns the generated instance identifier, also stamped on the
// rendered wrapper as data-tool-id.
func (t *Tool) ID() string {
	return t.id
}

// Data returns a copy of the current record.
func (t *Tool) Data() Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.record.clone()
}

// Merge applies the patch to the record and mirrors the result into the
// live tree. Assigning a source restarts the image load.
func (t *Tool) Merge(p Patch) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.disposed {
		return
	}
	t.record = t.record.merge(p)
	t.mirrorLocked()
	if p.URL != nil {
		t.restartLoadLocked()
	}
}

// Replace swaps the whole record and mirrors it into the live tree. Paste
// and drop land here: they reset the block rather than merge into it.
func (t *Tool) Replace(r Record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.disposed {
		return
	}
	t.record = r
	t.mirrorLocked()
	t.restartLoadLocked()
}

// Destroy invalidates the tool. In-flight loads are cancelled and their
// completions leave the record and tree untouched.
func (t *Tool) Destroy() {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}
	t.disposed = true
	t.mu.Unlock()
	t.cancel()
}

// WaitLoad blocks until the most recently started image load settles, or
// returns immediately when none was started.
func (t *Tool) WaitLoad(ctx context.Context) error {
	t.mu.Lock()
	done := t.loadDone
	t.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// restartLoadLocked supersedes any in-flight load and starts a new one
// when the tree exists and the current source is non-empty.
func (t *Tool) restartLoadLocked() {
	t.loadGen++
	if t.nodes.wrapper == nil || t.record.URL == "" {
		return
	}
	t.spawnLoadLocked(t.record.URL, t.loadGen)
}

func (t *Tool) spawnLoadLocked(src string, gen int) {
	done := make(chan struct{})
	t.loadDone = done
	go func() {
		defer close(done)
		err := t.loader.Load(t.ctx, src)
		t.finishLoad(gen, src, err)
	}()
}

// finishLoad runs on the loader goroutine once a source settles. Stale
// generations and completions after Destroy are dropped.
func (t *Tool) finishLoad(gen int, src string, err error) {
	t.mu.Lock()
	if t.disposed || gen != t.loadGen {
		t.mu.Unlock()
		return
	}
	if err != nil {
		log, id := t.log, t.id
		t.mu.Unlock()
		log.Error("Failed to load image", "tool_id", id, "src", src, "error", err)
		return
	}
	t.attachLocked()
	effects := t.enabledTuneEffectsLocked()
	t.mu.Unlock()

	for _, run := range effects {
		run()
	}
}
