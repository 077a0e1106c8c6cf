// Package generator turns a mention into launchable token metadata: details
// from a language model, a logo from an image model, both pinned to IPFS.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/google/uuid"

	"mention_launcher/internal/domain"
)

var walletRe = regexp.MustCompile(`0x[a-fA-F0-9]{40}`)

// Details is what the language model proposes for a token.
type Details struct {
	Name             string `json:"name"`
	Symbol           string `json:"symbol"`
	Description      string `json:"description"`
	ImageDescription string `json:"imageDescription"`
}

// Metadata is the token metadata document pinned to IPFS.
type Metadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type DetailsModel interface {
	Details(ctx context.Context, in domain.DescriptionAndContext) (*Details, error)
}

type ImageModel interface {
	Logo(ctx context.Context, d Details) ([]byte, error)
}

// Pinner stores content on IPFS and returns its CID.
type Pinner interface {
	PinFile(ctx context.Context, name string, data []byte) (string, error)
	PinJSON(ctx context.Context, name string, v any) (string, error)
}

type Generator struct {
	details DetailsModel
	images  ImageModel
	pinner  Pinner
	logger  *slog.Logger
}

func New(details DetailsModel, images ImageModel, pinner Pinner, logger *slog.Logger) *Generator {
	return &Generator{
		details: details,
		images:  images,
		pinner:  pinner,
		logger:  logger.With("component", "generator"),
	}
}

// Generate produces the token info for one mention. The receiver is the
// first wallet address in the description, if any.
func (g *Generator) Generate(ctx context.Context, in domain.DescriptionAndContext) (*domain.TokenInfo, error) {
	d, err := g.details.Details(ctx, in)
	if err != nil {
		g.logger.Error("failed to generate token details",
			"description", in.Description,
			"context", in.Context,
			"error", err,
		)
		return nil, fmt.Errorf("generate details: %w", err)
	}

	logo, err := g.images.Logo(ctx, *d)
	if err != nil {
		return nil, fmt.Errorf("generate logo: %w", err)
	}

	uri, err := g.pin(ctx, *d, logo)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("token info generated", "name", d.Name, "symbol", d.Symbol, "metadata_uri", uri)

	return &domain.TokenInfo{
		Name:        d.Name,
		Symbol:      d.Symbol,
		Description: d.Description,
		MetadataURI: uri,
		Receiver:    ExtractWallet(in.Description),
	}, nil
}

func (g *Generator) pin(ctx context.Context, d Details, logo []byte) (string, error) {
	imageCID, err := g.pinner.PinFile(ctx, fmt.Sprintf("%s-%s.png", d.Symbol, uuid.NewString()), logo)
	if err != nil {
		return "", fmt.Errorf("pin logo: %w", err)
	}

	meta := Metadata{
		Name:        d.Name,
		Symbol:      d.Symbol,
		Description: d.Description,
		Image:       "ipfs://" + imageCID,
	}
	metaCID, err := g.pinner.PinJSON(ctx, fmt.Sprintf("%s-%s.json", d.Symbol, uuid.NewString()), meta)
	if err != nil {
		return "", fmt.Errorf("pin metadata: %w", err)
	}

	return "ipfs://" + metaCID, nil
}

// ExtractWallet returns the first 0x-prefixed 40 hex digit address in s.
func ExtractWallet(s string) string {
	return walletRe.FindString(s)
}
