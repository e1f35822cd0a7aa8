package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/blogly/api"
	"github.com/kutbudev/blogly/pkg/config"
	"github.com/kutbudev/blogly/pkg/repository"
	"github.com/spf13/cobra"
)

// Version will be set during build with ldflags
var Version = "1.0.0"

func main() {
	root := &cobra.Command{
		Use:     "blogly",
		Short:   "Blogly content management backend",
		Version: Version,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newServeCmd() *cobra.Command {
	var templates string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.Debug {
				gin.SetMode(gin.ReleaseMode)
			}

			db, err := repository.NewDatabase(cfg)
			if err != nil {
				return err
			}

			r := api.NewRouter(db, templates)
			return r.Run(cfg.Addr())
		},
	}
	cmd.Flags().StringVar(&templates, "templates", "web/templates/*.html", "glob of HTML templates to serve")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if _, err := repository.NewDatabase(cfg); err != nil {
				return err
			}
			fmt.Println("migrations applied")
			return nil
		},
	}
}
