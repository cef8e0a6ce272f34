//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/faq-service/internal/bootstrap"
	"github.com/yanqian/faq-service/internal/domain/auth"
	"github.com/yanqian/faq-service/internal/domain/faq"
	"github.com/yanqian/faq-service/internal/infra/config"
	httpiface "github.com/yanqian/faq-service/internal/interface/http"
	"github.com/yanqian/faq-service/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideFAQConfig,
		provideStores,
		provideFAQRepository,
		provideUserRepository,
		provideCache,
		provideTranslator,
		provideSanitizer,
		provideTracing,
		auth.NewService,
		faq.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
