package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/medicapp-cli/internal/adapters/api"
	"github.com/bnema/medicapp-cli/internal/adapters/callsurface/jitsi"
	"github.com/bnema/medicapp-cli/internal/adapters/render/console"
	tomlrepo "github.com/bnema/medicapp-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/medicapp-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/medicapp-cli/internal/adapters/secrets/file"
	memorystore "github.com/bnema/medicapp-cli/internal/adapters/secrets/memory"
	"github.com/bnema/medicapp-cli/internal/application"
	"github.com/bnema/medicapp-cli/internal/config"
	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/logging"
	"github.com/bnema/medicapp-cli/internal/ports"
	"github.com/bnema/medicapp-cli/internal/version"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	accessTokenName  = "access_token"
	refreshTokenName = "refresh_token"

	invitationHint = "Answer with /accept or /reject, or run: medicapp call respond --accept"
)

type app struct {
	cfg      config.Config
	logger   *zap.Logger
	client   ports.MedicappAPI
	session  *application.SessionManager
	state    *application.ClientState
	renderer *console.Renderer
	sync     *application.SyncEngine
	calls    *application.CallCoordinator
	surface  ports.CallSurface
	service  *application.Service
	out      io.Writer

	statusRenderer  func(application.SessionStatus, console.RenderOptions) (string, error)
	profileRenderer func(application.DoctorProfile, console.RenderOptions) (string, error)
	now             func() time.Time
}

type wireOptions struct {
	Out io.Writer
	Err io.Writer
	// Live is set for commands that keep polling until interrupted.
	Live bool
}

func wireApp(v *viper.Viper, opts wireOptions) (*app, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Options{Path: cfg.LogPath, Verbose: cfg.Verbose, Console: opts.Err}).
		With(zap.String("profile", cfg.Profile))

	sessionStore := newSessionStore(cfg)
	durableStore, err := newDurableStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire durable secret store: %w", err)
	}
	refreshStore, err := chainstore.NewStoreChecked(durableStore, sessionStore)
	if err != nil {
		return nil, fmt.Errorf("wire refresh token store: %w", err)
	}

	httpClient := &http.Client{}
	session := application.NewSessionManager(sessionStore, refreshStore, api.RefreshExchanger{
		BaseURL:    cfg.BaseURL,
		HTTPClient: httpClient,
		Logger:     logger.Named("refresh"),
		UserAgent:  version.UserAgent(),
	}, application.SessionOptions{
		AccessTokenKey:  cfg.SecretKey(accessTokenName),
		RefreshTokenKey: cfg.SecretKey(refreshTokenName),
		Logger:          logger.Named("session"),
	})

	gateway, err := api.NewGateway(session, api.Options{
		BaseURL:    cfg.BaseURL,
		HTTPClient: httpClient,
		Logger:     logger.Named("api"),
		UserAgent:  version.UserAgent(),
	})
	if err != nil {
		return nil, fmt.Errorf("wire api gateway: %w", err)
	}
	client := api.NewClient(gateway)

	state := application.NewClientState()
	renderer := console.New(console.Options{
		Out:            opts.Out,
		Err:            opts.Err,
		Now:            time.Now,
		InvitationHint: invitationHint,
		Live:           opts.Live,
	})

	syncEngine := application.NewSyncEngine(client, state, renderer, application.SyncOptions{
		Interval: cfg.PollInterval,
		Logger:   logger.Named("sync"),
	})

	opener := jitsi.OpenBrowser
	if !cfg.OpenBrowser {
		opener = jitsi.NoOpen
	}
	surface := jitsi.NewSurface(jitsi.Options{
		Domain: cfg.CallDomain,
		Out:    opts.Out,
		Open:   opener,
		Logger: logger.Named("call"),
	})

	calls := application.NewCallCoordinator(client, state, renderer, surface, syncEngine, logger.Named("call"))
	syncEngine.ObserveInvitations(calls)

	records, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire session record repository: %w", err)
	}

	service := application.NewService(client, session, state, renderer, syncEngine, records, application.ServiceOptions{
		Profile: cfg.Profile,
		BaseURL: cfg.BaseURL,
		Clock:   ports.SystemClock{},
		Logger:  logger,
	})
	gateway.OnSessionExpired(service.HandleSessionExpired)

	return &app{
		cfg:             cfg,
		logger:          logger,
		client:          client,
		session:         session,
		state:           state,
		renderer:        renderer,
		sync:            syncEngine,
		calls:           calls,
		surface:         surface,
		service:         service,
		out:             opts.Out,
		statusRenderer:  console.RenderStatus,
		profileRenderer: console.RenderDoctorProfile,
		now:             time.Now,
	}, nil
}

func newSessionStore(cfg config.Config) ports.SecretStore {
	if cfg.SessionStore == config.SessionStoreMemory {
		return memorystore.NewStore(0)
	}
	return filestore.NewStore(cfg.SessionDir)
}

func newDurableStore(cfg config.Config) (ports.SecretStore, error) {
	if cfg.SecretsBackend == config.SecretsBackendFile {
		return filestore.NewStore(cfg.SecretsDir), nil
	}
	return chainstore.NewDurable(cfg.SecretsDir)
}

// admission builds the waiting-room flow around an interactive prompter.
func (a *app) admission(prompter ports.Prompter, onProgress func(phase domain.AdmissionPhase, room domain.Room)) *application.AdmissionFlow {
	return application.NewAdmissionFlow(a.client, a.state, a.renderer, a.surface, prompter, application.AdmissionOptions{
		Interval:   a.cfg.AdmissionInterval,
		Logger:     a.logger.Named("admission"),
		OnProgress: onProgress,
	})
}

// resume restores the stored session and loads the current user. Every
// command except login, register and version starts here.
func (a *app) resume(ctx context.Context) error {
	_, err := a.service.AutoLogin(ctx)
	if errors.Is(err, domain.ErrNoSession) || errors.Is(err, domain.ErrSessionExpired) {
		return fmt.Errorf("%w (run `medicapp login` first)", err)
	}
	return err
}

func (a *app) close() {
	if a.sync != nil {
		a.sync.Stop()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
