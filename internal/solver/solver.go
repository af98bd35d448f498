// Package solver is the boundary to the external team optimizer.
//
// The optimizer is a black box: it receives the catalog text, a serialized
// account, a song and two random seeds, and proposes nine cards with an
// accessory per slot. Nothing here mutates the account; a request carries
// a serialized snapshot taken when it was built.
package solver

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"os/exec"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/idolplan/idolplan/internal/account"
	"github.com/idolplan/idolplan/internal/catalog"
)

// TeamSize is the number of card and accessory slots in a proposal
const TeamSize = 9

// Request is one solver invocation
type Request struct {
	Steps   uint32 `json:"steps"`
	Catalog string `json:"cards"`
	Account string `json:"account"`
	SongID  uint32 `json:"song_id"`
	Song    string `json:"song"`
	SeedLo  uint32 `json:"rng_lo"`
	SeedHi  uint32 `json:"rng_hi"`
}

// NewRequest snapshots the account and draws a fresh pair of seeds
func NewRequest(steps uint32, c *catalog.Catalog, a *account.Account, songID uint32, song []byte) (Request, error) {
	if steps == 0 {
		return Request{}, fmt.Errorf("step count must be positive")
	}

	snapshot, err := account.Marshal(a)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Steps:   steps,
		Catalog: string(c.Raw),
		Account: string(snapshot),
		SongID:  songID,
		Song:    string(song),
		SeedLo:  rand.Uint32(),
		SeedHi:  rand.Uint32(),
	}, nil
}

// Solver runs a request and returns the optimizer's raw result text
type Solver interface {
	Solve(ctx context.Context, req Request) ([]byte, error)
}

// CommandSolver runs an external executable. The request is written to its
// stdin as JSON and the result is read from its stdout.
type CommandSolver struct {
	Command string
	Args    []string
}

func (s *CommandSolver) Solve(ctx context.Context, req Request) ([]byte, error) {
	if s.Command == "" {
		return nil, fmt.Errorf("no solver command configured")
	}

	input, err := sonic.Marshal(&req)
	if err != nil {
		return nil, fmt.Errorf("error encoding solver request: %w", err)
	}

	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	cmd.Stdin = bytes.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("solver %s failed: %w: %s", s.Command, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

// Run invokes a solver and decodes its result
func Run(ctx context.Context, s Solver, req Request) (Result, error) {
	log.Info().Uint32("steps", req.Steps).Uint32("song", req.SongID).
		Uint32("rng_lo", req.SeedLo).Uint32("rng_hi", req.SeedHi).Msg("running solver")

	start := time.Now()
	out, err := s.Solve(ctx, req)
	if err != nil {
		return Result{}, err
	}

	res, err := DecodeResult(out)
	if err != nil {
		return Result{}, err
	}
	log.Info().Float64("voltage", res.Voltage).Dur("elapsed", time.Since(start)).Msg("solver finished")
	return res, nil
}
