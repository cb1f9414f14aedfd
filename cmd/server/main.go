// meadowgen-server serves level previews over SSH. Every connection gets its
// own viewer; seeds are handed out in order across all sessions. Build:
//
//	go build -o meadowgen-server ./cmd/server
//
// Usage:
//
//	./meadowgen-server [-port 2222] [-key server_host_key] [-seed 1] [-size 80]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"meadowgen/internal/generate"
	"meadowgen/internal/preview"
	internalssh "meadowgen/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := generate.DefaultConfig()
	cfg.WorldWidth, cfg.WorldHeight = 80, 80
	cfg.Seed = 1
	cfg.BindFlags(flag.CommandLine)
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	maxSessions := flag.Int("max-sessions", 16, "maximum concurrent preview sessions")
	flag.Parse()
	cfg.SyncNoiseSeed(flag.CommandLine)
	if err := cfg.Validate(); err != nil {
		logger.Error("bad generation flags", "err", err)
		os.Exit(2)
	}

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "err", err)
		os.Exit(1)
	}

	srv := &server{
		cfg:    cfg,
		seeds:  preview.NewSeedSource(cfg.Seed),
		slots:  make(chan struct{}, max(*maxSessions, 1)),
		logger: logger,
	}
	sshSrv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     srv.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: previews are read-only and hold no user data.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("meadowgen SSH server listening", "port", *port, "first_seed", cfg.Seed)
	if err := sshSrv.ListenAndServe(); err != nil {
		logger.Error("serve", "err", err)
		os.Exit(1)
	}
}

// server hands every SSH session its own preview viewer.
type server struct {
	cfg    generate.Config
	seeds  *preview.SeedSource
	slots  chan struct{}
	logger *slog.Logger
}

// allowedTerms lists the terminal types a client may ask for. TERM is copied
// into the process environment before terminfo lookup, so only known names
// are accepted.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// maxNameBytes bounds the user name shown in the HUD.
const maxNameBytes = 16

// sanitizeName drops control characters from name and truncates it to
// maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// until the viewer exits or the client disconnects.
func (s *server) handleSession(sess gossh.Session) {
	select {
	case s.slots <- struct{}{}:
		defer func() { <-s.slots }()
	default:
		fmt.Fprintln(sess, "The server is busy, try again shortly.")
		return
	}

	name := sanitizeName(sess.User())
	log := s.logger.With("user", name, "remote", sess.RemoteAddr().String())

	tty, err := internalssh.NewSessionTty(sess)
	if err != nil {
		fmt.Fprintln(sess, "A terminal is required. Connect with: ssh -t -p <port> <host>")
		return
	}
	term := tty.Term()
	if !allowedTerms[term] {
		term = defaultTerm
	}

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(sess, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	// Unblock PollEvent when the client goes away.
	go func() {
		<-sess.Context().Done()
		screen.Fini()
	}()

	cfg := s.cfg
	cfg.Seed = s.seeds.Next()
	cfg.NoiseSeed = cfg.Seed
	v := preview.New(screen, cfg, s.seeds, log)
	v.Title = name

	log.Info("session started", "seed", cfg.Seed, "term", term)
	if err := v.Run(); err != nil {
		log.Error("viewer", "err", err)
		return
	}
	log.Info("session ended", "levels_seed", v.Stats().Seed)
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "meadowgen server")
	if err != nil {
		logger.Warn("encode host key", "err", err)
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		logger.Warn("persist host key", "path", path, "err", err)
	}
	return signer, nil
}
