package testutils

import (
	"coinaddr/chaincfg"
	"coinaddr/wallet"
)

func RandomAddress(params *chaincfg.Params) string {
	w := wallet.MakeWallet()
	return w.Address(params).String()
}

func RandomWallet() *wallet.Wallet {
	return wallet.MakeWallet()
}
