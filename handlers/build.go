package handlers

import (
	"fmt"

	"github.com/stellar/go/amount"

	"github.com/daccred/stellarops.attest.so/models"
	"github.com/daccred/stellarops.attest.so/operations"
)

// BuildOperation constructs a domain operation from an API build request.
// Amounts arrive as decimal lumen strings and are converted to stroops;
// missing required fields surface as the builder's ConstructionError.
func BuildOperation(req models.BuildRequest) (operations.Operation, error) {
	switch req.Type {
	case "create_account":
		b := operations.CreateAccount().
			WithSourceAccount(req.SourceAccount).
			WithDestination(req.Destination)
		if req.StartingBalance != "" {
			stroops, err := amount.Parse(req.StartingBalance)
			if err != nil {
				return operations.Operation{}, fmt.Errorf("invalid starting_balance: %w", err)
			}
			b.WithStartingBalance(int64(stroops))
		}
		return b.Build()

	case "payment":
		b := operations.Payment().
			WithSourceAccount(req.SourceAccount).
			WithDestination(req.Destination)
		if req.Asset != nil {
			b.WithAsset(assetFromSpec(*req.Asset))
		}
		if req.Amount != "" {
			stroops, err := amount.Parse(req.Amount)
			if err != nil {
				return operations.Operation{}, fmt.Errorf("invalid amount: %w", err)
			}
			b.WithAmount(int64(stroops))
		}
		return b.Build()

	case "path_payment_strict_receive":
		b := operations.PathPaymentStrictReceive().
			WithSourceAccount(req.SourceAccount).
			WithDestination(req.Destination)
		if req.SendAsset != nil {
			b.WithSendAsset(assetFromSpec(*req.SendAsset))
		}
		if req.SendMax != "" {
			stroops, err := amount.Parse(req.SendMax)
			if err != nil {
				return operations.Operation{}, fmt.Errorf("invalid send_max: %w", err)
			}
			b.WithSendMax(int64(stroops))
		}
		if req.DestinationAsset != nil {
			b.WithDestinationAsset(assetFromSpec(*req.DestinationAsset))
		}
		if req.DestinationAmount != "" {
			stroops, err := amount.Parse(req.DestinationAmount)
			if err != nil {
				return operations.Operation{}, fmt.Errorf("invalid destination_amount: %w", err)
			}
			b.WithDestinationAmount(int64(stroops))
		}
		if len(req.Path) > 0 {
			path := make([]operations.Asset, 0, len(req.Path))
			for _, spec := range req.Path {
				path = append(path, assetFromSpec(spec))
			}
			b.WithPath(path...)
		}
		return b.Build()

	case "account_merge":
		return operations.AccountMerge().
			WithSourceAccount(req.SourceAccount).
			WithDestination(req.Destination).
			Build()

	case "inflation":
		return operations.Inflation().
			WithSourceAccount(req.SourceAccount).
			Build()

	default:
		return operations.Operation{}, fmt.Errorf("unknown operation type %q", req.Type)
	}
}

func assetFromSpec(spec models.AssetSpec) operations.Asset {
	if spec.Code == "" && spec.Issuer == "" {
		return operations.NativeAsset()
	}
	return operations.CreditAsset(spec.Code, spec.Issuer)
}
