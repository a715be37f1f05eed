package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var TributaryMarketABI abi.ABI

var tributaryMarketABI = `[{"type":"function","name":"listingCount","constant":true,"stateMutability":"view","payable":false,"inputs":[],"outputs":[{"type":"uint256"}]},{"type":"function","name":"getListing","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"listingId"}],"outputs":[{"type":"address","name":"seller"},{"type":"address","name":"vault"},{"type":"address","name":"token"},{"type":"uint256","name":"amount"},{"type":"uint256","name":"sold"},{"type":"uint256","name":"pricePerToken"},{"type":"address","name":"paymentToken"},{"type":"bool","name":"isActive"},{"type":"bool","name":"isPrimarySale"},{"type":"uint256","name":"createdAt"},{"type":"uint256","name":"expiresAt"}]},{"type":"function","name":"floorPrice","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"token"}],"outputs":[{"type":"uint256"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(tributaryMarketABI))
	if err != nil {
		panic("Failed to parse tributary market abi")
	}
	TributaryMarketABI = _abi
}
