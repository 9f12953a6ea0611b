package main

import (
	"fmt"

	"github.com/fwojciec/pullquote/gin"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := gin.NewServer(deps.Extractor, deps.Scorer, deps.Transcripts, deps.Logger)

	fmt.Fprintf(deps.Stdout, "listening on %s\n", c.Addr)
	return srv.ListenAndServe(c.Addr)
}
