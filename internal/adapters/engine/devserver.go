package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/usher/internal/core/domain"
	"go.trai.ch/usher/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// SessionFileEnv tells the delegate where the serve session file lives.
	SessionFileEnv = "USHER_SERVE_SESSION"

	sessionFileName = "serve-session.json"
)

// session is the file handed to the delegate for state that does not fit on
// the command line. It lives under the cache dir for the duration of the
// serve session and is removed on exit.
type session struct {
	Options              domain.Options        `json:"options"`
	BundlerConfig        *domain.BundlerConfig `json:"bundlerConfig,omitempty"`
	IndexHTMLTransformer string                `json:"indexHtmlTransformer,omitempty"`
}

// DevServer runs the delegate engine's dev server as a child process and
// streams its output through the logger.
type DevServer struct {
	root     string
	cacheDir string
	logger   ports.Logger
}

// NewDevServer creates a new DevServer for the workspace rooted at root.
func NewDevServer(root, cacheDir string, logger ports.Logger) *DevServer {
	return &DevServer{
		root:     root,
		cacheDir: cacheDir,
		logger:   logger,
	}
}

// Serve writes the session file, launches the delegate dev server, and
// blocks until it exits or ctx is cancelled. The delegate's output is
// forwarded line by line: stdout as info, stderr as warnings.
func (s *DevServer) Serve(ctx context.Context, req *ports.ServeRequest) error {
	sessionPath, err := s.writeSession(req)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(sessionPath) }()

	//nolint:gosec // arguments derive from resolved target options
	cmd := exec.CommandContext(ctx, "npx", serveArgs(req.Options)...)
	cmd.Dir = s.root
	cmd.Env = append(os.Environ(), SessionFileEnv+"="+sessionPath)

	log := s.logger
	if req.Logger != nil {
		log = req.Logger
	}
	stdout := &lineWriter{emit: log.Info}
	stderr := &lineWriter{emit: log.Warn}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	runErr := cmd.Run()
	stdout.Flush()
	stderr.Flush()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(
			errors.Join(domain.ErrEngineExited, runErr),
			"exit_code", exitCode,
		)
	}
	return nil
}

func (s *DevServer) writeSession(req *ports.ServeRequest) (string, error) {
	sess := session{
		Options:              req.Options,
		IndexHTMLTransformer: req.IndexTransformPath,
	}
	if req.BundlerConfig != nil {
		cfg, err := req.BundlerConfig()
		if err != nil {
			return "", zerr.Wrap(err, "failed to resolve bundler config")
		}
		sess.BundlerConfig = cfg
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode serve session")
	}

	dir := filepath.Join(s.cacheDir, domain.TmpDirName)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, "failed to create session dir")
	}

	path := filepath.Join(dir, sessionFileName)
	if err := os.WriteFile(path, data, domain.PrivateFilePerm); err != nil {
		return "", zerr.Wrap(err, "failed to write serve session")
	}
	return path, nil
}

// serveArgs builds the delegate command line. Scalar options become flags in
// sorted order; structured values travel in the session file instead.
func serveArgs(options domain.Options) []string {
	args := []string{"ng", "serve"}

	keys := make([]string, 0, len(options))
	for k := range options {
		if isScalar(options[k]) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		args = append(args, fmt.Sprintf("--%s=%v", k, options[k]))
	}
	return args
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, int, int64, float64, json.Number:
		return true
	default:
		return false
	}
}

// lineWriter forwards complete lines to emit, buffering partial writes. A
// final unterminated line is emitted by Flush.
type lineWriter struct {
	emit func(string)
	buf  []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emitLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *lineWriter) Flush() {
	if len(w.buf) > 0 {
		w.emitLine(w.buf)
		w.buf = nil
	}
}

func (w *lineWriter) emitLine(line []byte) {
	w.emit(strings.TrimSuffix(string(line), "\r"))
}
