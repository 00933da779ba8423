package commands

import (
	"time"

	"github.com/hashicorp/go-hclog"

	"tableflip.dev/journal/pkg/app"
	"tableflip.dev/journal/pkg/gist"
	"tableflip.dev/journal/pkg/logging"
	"tableflip.dev/journal/pkg/store"
	"tableflip.dev/journal/pkg/syncer"
)

// drainTimeout bounds how long the process waits at exit for a background
// push that is still talking to GitHub.
const drainTimeout = 10 * time.Second

// session lazily builds the pieces a command needs, once per process.
type session struct {
	cfg store.WritableConfig
	log hclog.Logger
	p   store.Persistence
	svc *app.Service
}

func (s *session) config() (store.WritableConfig, error) {
	if s.cfg != nil {
		return s.cfg, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	s.log = logging.New(cfg.Debug(), nil)
	return cfg, nil
}

func (s *session) persistence() (store.Persistence, error) {
	if s.p != nil {
		return s.p, nil
	}
	cfg, err := s.config()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	s.log.Debug("journal loaded", "path", p.Path())
	s.p = p
	return p, nil
}

func (s *session) service() (*app.Service, error) {
	if s.svc != nil {
		return s.svc, nil
	}
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	coordinator := syncer.New(p, remoteFactory(s.cfg), syncer.Options{
		Debounce: s.cfg.SyncDebounce(),
		Logger:   s.log,
		NotFound: gist.IsNotFound,
	})
	s.svc = &app.Service{Persistence: p, Syncer: coordinator}
	return s.svc, nil
}

// close waits for a background push started by this process.
func (s *session) close() {
	if s.svc == nil || s.svc.Syncer == nil {
		return
	}
	s.svc.Syncer.Drain(drainTimeout)
}

func remoteFactory(cfg store.Config) syncer.RemoteFactory {
	return func(token string) (syncer.Remote, error) {
		return gist.New(gist.Options{
			Token:   token,
			BaseURL: cfg.SyncEndpoint(),
			Timeout: cfg.SyncTimeout(),
		})
	}
}
