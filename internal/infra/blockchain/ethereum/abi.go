package ethereum

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

//go:embed abi/GreenEnergyToken.json
var defaultABI []byte

// artifact is the subset of a compiler artifact (truffle, hardhat) holding
// the contract ABI.
type artifact struct {
	ABI json.RawMessage `json:"abi"`
}

// LoadABI returns the contract ABI read from path, or the embedded
// GreenEnergyToken ABI when path is empty. The file may hold either a bare
// ABI array or a compiler artifact with an "abi" field.
func LoadABI(path string) (abi.ABI, error) {
	if path == "" {
		return ParseABI(defaultABI)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("read contract abi: %w", err)
	}

	return ParseABI(data)
}

// ParseABI decodes a bare ABI array or a compiler artifact.
func ParseABI(data []byte) (abi.ABI, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var a artifact
		if err := json.Unmarshal(data, &a); err != nil {
			return abi.ABI{}, fmt.Errorf("decode contract artifact: %w", err)
		}

		if len(a.ABI) == 0 {
			return abi.ABI{}, fmt.Errorf("contract artifact has no abi field")
		}
		data = a.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse contract abi: %w", err)
	}

	return parsed, nil
}
