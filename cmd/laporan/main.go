package main

import (
	"context"

	"github.com/faizmokh/laporan/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
