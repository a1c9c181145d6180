// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command token issues API tokens, mainly observer tokens for the report and
// settings endpoints. The signing key and issuer come from the same APP_*
// environment as the server.
//
//	token -user 12 -role observer
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-exam-watermark/internal/config"
	"github.com/MKhiriev/go-exam-watermark/internal/logger"
	"github.com/MKhiriev/go-exam-watermark/internal/service"
	"github.com/MKhiriev/go-exam-watermark/models"
)

func main() {
	userID := flag.Int64("user", 0, "User id the token is issued to")
	role := flag.String("role", string(models.RoleObserver), "Token role: observer or student")
	flag.Parse()

	log := logger.NewLogger("exam-watermark-token")
	cfg, err := config.GetEnvConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	r := models.Role(*role)
	if *userID <= 0 || (r != models.RoleObserver && r != models.RoleStudent) {
		flag.Usage()
		os.Exit(2)
	}

	token, err := service.NewAuthService(cfg.App, log).CreateToken(context.Background(), *userID, r)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	fmt.Println(token.String())
}
