package instagramimpl

import (
	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-virality-exporter/internal/instagram"
	"github.com/orgball2608/insta-virality-exporter/internal/ratelimit"
	"github.com/orgball2608/insta-virality-exporter/pkg/config"
	"github.com/orgball2608/insta-virality-exporter/pkg/logger"
	"go.uber.org/fx"
)

type IgImpl struct {
	Client *goinsta.Instagram
	Config *config.Config
	Logger logger.Logger
	Pacer  ratelimit.Pacer
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Pacer  ratelimit.Pacer
}

func New(opts Opts) *IgImpl {
	client := goinsta.New(opts.Config.Instagram.User, opts.Config.Instagram.Pass)

	return &IgImpl{
		Client: client,
		Config: opts.Config,
		Logger: opts.Logger.WithComponent("Instagram"),
		Pacer:  opts.Pacer,
	}
}

var _ instagram.Client = (*IgImpl)(nil)
