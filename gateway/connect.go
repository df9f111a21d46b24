package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/store"
)

const maxConnectBody = 1 << 20

// looseString accepts any JSON scalar.  The connect form has historically sent port as either a number or a string
// and secure as either a boolean or "implicit".
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	switch {
	case len(b) == 0 || string(b) == "null":
		*s = ""
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
	case b[0] == '{' || b[0] == '[':
		return fmt.Errorf("expected a scalar, got %s", b)
	default:
		*s = looseString(b)
	}
	return nil
}

type connectRequest struct {
	Host     string      `json:"host"`
	Port     looseString `json:"port"`
	User     string      `json:"user"`
	Username string      `json:"username"`
	Password string      `json:"password"`
	Protocol string      `json:"protocol"`
	Secure   looseString `json:"secure"`
	Save     looseString `json:"save"`
	Name     string      `json:"name"`
}

// parseConnect reads a JSON or form encoded connect request.
func parseConnect(w http.ResponseWriter, r *http.Request) (connectRequest, error) {
	var req connectRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxConnectBody))
		if err := dec.Decode(&req); err != nil {
			return req, fmt.Errorf("%w: decode connect request: %w", errBadRequest, err)
		}
		return req, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxConnectBody)
	if err := r.ParseForm(); err != nil {
		return req, fmt.Errorf("%w: parse connect form: %w", errBadRequest, err)
	}
	req = connectRequest{
		Host:     r.FormValue("host"),
		Port:     looseString(r.FormValue("port")),
		User:     r.FormValue("user"),
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
		Protocol: r.FormValue("protocol"),
		Secure:   looseString(r.FormValue("secure")),
		Save:     looseString(r.FormValue("save")),
		Name:     r.FormValue("name"),
	}
	return req, nil
}

// config validates the request and returns a normalized config and whether it should be remembered.
func (req connectRequest) config() (webftp.ConnectionConfig, bool, error) {
	var cfg webftp.ConnectionConfig

	port := 0
	if p := strings.TrimSpace(string(req.Port)); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return cfg, false, fmt.Errorf("%w: port %q is not a number", webftp.ErrInvalidConfig, p)
		}
		port = n
	}

	tlsMode, err := webftp.ParseTLSMode(string(req.Secure))
	if err != nil {
		return cfg, false, err
	}

	save, err := parseFlag(string(req.Save))
	if err != nil {
		return cfg, false, err
	}

	user := req.User
	if user == "" {
		user = req.Username
	}

	cfg, err = webftp.ConnectionConfig{
		Host:     req.Host,
		Port:     port,
		Username: user,
		Password: req.Password,
		Protocol: webftp.Protocol(req.Protocol),
		TLS:      tlsMode,
	}.Normalize()
	return cfg, save, err
}

func parseFlag(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "no":
		return false, nil
	case "1", "true", "on", "yes":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", errBadRequest, v)
	}
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	req, err := parseConnect(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	cfg, save, err := req.config()
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := s.connect(r.Context(), cfg)
	if err != nil {
		writeError(w, err)
		return
	}

	if save {
		s.remember(r.Context(), cfg, req.Name)
	}
	writeJSON(w, http.StatusOK, connectResponse{Success: true, ConnectionID: id})
}

// remember encrypts the password and saves the connection in the background.  Failures are logged only; the connect
// response never waits on persistence.
func (s *Server) remember(ctx context.Context, cfg webftp.ConnectionConfig, name string) {
	ctx = context.WithoutCancel(ctx)
	s.saves.Add(1)
	go func() {
		defer s.saves.Done()

		ctx, cancel := context.WithTimeout(ctx, saveTimeout)
		defer cancel()

		logger := s.logger.With("host", cfg.Host, "user", cfg.Username, "protocol", cfg.Protocol)
		if s.cipher == nil {
			logger.Error("cannot remember connection", "error",
				fmt.Errorf("%w: no encryption key configured", webftp.ErrConfiguration))
			return
		}
		token, err := s.cipher.Encrypt(cfg.Password)
		if err != nil {
			logger.Error("cannot remember connection", "error", err)
			return
		}

		c := store.FromConfig(cfg, token)
		c.Name = name
		if err := s.store.SaveConnection(ctx, c); err != nil {
			logger.Error("failed to save connection", "error", err)
			return
		}
		logger.Info("connection saved")
	}()
}

func (s *Server) handleListConnections(w http.ResponseWriter, r *http.Request) {
	conns, err := s.store.ListConnections(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if conns == nil {
		conns = []store.StoredConnection{}
	}
	writeJSON(w, http.StatusOK, connectionsResponse{Success: true, Connections: conns})
}

func (s *Server) handleConnectSaved(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetConnection(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	if s.cipher == nil {
		writeError(w, fmt.Errorf("%w: no encryption key configured", webftp.ErrConfiguration))
		return
	}
	password, err := s.cipher.Decrypt(c.PasswordCiphertext)
	if err != nil {
		writeError(w, err)
		return
	}

	cfg, err := c.Config(password).Normalize()
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := s.connect(r.Context(), cfg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, connectResponse{Success: true, ConnectionID: id})
}

func (s *Server) handleDeleteConnection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteConnection(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Connection deleted"})
}

