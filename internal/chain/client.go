// Package chain submits launch and migration transactions to the token
// factory and finds tokens that are due for migration.
package chain

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

var ErrHatchEventNotFound = errors.New("hatch event not found in receipt")

type Config struct {
	RPCURL            string
	ChainID           int64
	PrivateKey        string
	ContractAddress   string
	TreasuryAddress   string
	MintFeeWei        string
	MarketURLTemplate string
}

// CandidateSource lists tokens that may be migrated.
type CandidateSource interface {
	ListMigrationCandidates(ctx context.Context) ([]string, error)
}

// hatchEvent mirrors the Hatch event of the factory.
type hatchEvent struct {
	Token    common.Address
	Creator  common.Address
	Name     string
	Symbol   string
	TokenURI string
}

type Client struct {
	eth        *ethclient.Client
	backend    bind.DeployBackend
	contract   *bind.BoundContract
	abi        abi.ABI
	address    common.Address
	key        *ecdsa.PrivateKey
	chainID    *big.Int
	treasury   common.Address
	mintFee    *big.Int
	market     string
	candidates CandidateSource
	logger     *slog.Logger
}

func New(ctx context.Context, cfg Config, candidates CandidateSource, logger *slog.Logger) (*Client, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	mintFee, ok := new(big.Int).SetString(cfg.MintFeeWei, 10)
	if !ok {
		return nil, fmt.Errorf("parse mint fee %q", cfg.MintFeeWei)
	}

	parsed, err := abi.JSON(strings.NewReader(factoryABI))
	if err != nil {
		return nil, fmt.Errorf("parse abi: %w", err)
	}

	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	address := common.HexToAddress(cfg.ContractAddress)

	return &Client{
		eth:        eth,
		backend:    eth,
		contract:   bind.NewBoundContract(address, parsed, eth, eth, eth),
		abi:        parsed,
		address:    address,
		key:        key,
		chainID:    big.NewInt(cfg.ChainID),
		treasury:   common.HexToAddress(cfg.TreasuryAddress),
		mintFee:    mintFee,
		market:     cfg.MarketURLTemplate,
		candidates: candidates,
		logger:     logger.With("component", "chain"),
	}, nil
}

func (c *Client) Close() {
	c.eth.Close()
}

// Hatch launches a token and returns its address. An empty receiver makes
// the treasury the creator.
func (c *Client) Hatch(ctx context.Context, name, symbol, receiver, metadataURI string) (string, error) {
	creator := c.creator(receiver)

	var salt [32]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	opts, err := c.transactOpts(ctx)
	if err != nil {
		return "", err
	}
	opts.Value = new(big.Int).Set(c.mintFee)

	tx, err := c.contract.Transact(opts, "hatch", name, symbol, creator, salt, metadataURI)
	if err != nil {
		c.logger.Error("failed to send hatch transaction",
			"name", name,
			"symbol", symbol,
			"creator", creator.Hex(),
			"token_uri", metadataURI,
			"error", err,
		)
		return "", fmt.Errorf("send hatch: %w", err)
	}

	receipt, err := c.wait(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("hatch %s: %w", tx.Hash().Hex(), err)
	}

	token, err := c.tokenFromReceipt(receipt)
	if err != nil {
		return "", fmt.Errorf("hatch %s: %w", tx.Hash().Hex(), err)
	}

	c.logger.Info("token hatched", "token_address", token.Hex(), "tx_hash", tx.Hash().Hex())
	return token.Hex(), nil
}

// Migrate moves a token to its market and returns the transaction hash.
func (c *Client) Migrate(ctx context.Context, token string) (string, error) {
	opts, err := c.transactOpts(ctx)
	if err != nil {
		return "", err
	}

	tx, err := c.contract.Transact(opts, "migrate", common.HexToAddress(token))
	if err != nil {
		return "", fmt.Errorf("send migrate: %w", err)
	}

	if _, err := c.wait(ctx, tx); err != nil {
		return "", fmt.Errorf("migrate %s: %w", tx.Hash().Hex(), err)
	}

	return tx.Hash().Hex(), nil
}

func (c *Client) ListMigrationCandidates(ctx context.Context) ([]string, error) {
	return c.candidates.ListMigrationCandidates(ctx)
}

func (c *Client) MarketURL(token string) string {
	return fmt.Sprintf(c.market, token)
}

func (c *Client) creator(receiver string) common.Address {
	if receiver == "" || !common.IsHexAddress(receiver) {
		return c.treasury
	}
	return common.HexToAddress(receiver)
}

func (c *Client) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

func (c *Client) wait(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("wait mined: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction failed with status %d", receipt.Status)
	}
	return receipt, nil
}

func (c *Client) tokenFromReceipt(receipt *types.Receipt) (common.Address, error) {
	event := c.abi.Events["Hatch"]
	for _, log := range receipt.Logs {
		if log.Address != c.address || len(log.Topics) == 0 || log.Topics[0] != event.ID {
			continue
		}
		var ev hatchEvent
		if err := c.contract.UnpackLog(&ev, "Hatch", *log); err != nil {
			return common.Address{}, fmt.Errorf("unpack hatch event: %w", err)
		}
		return ev.Token, nil
	}
	return common.Address{}, ErrHatchEventNotFound
}
