package cli

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"coinaddr/chaincfg"
	"coinaddr/keystore"
	"coinaddr/wallet"
)

const keystorePath = "./tmp/keystore_%s"

type CommandLine struct{}

func (cli *CommandLine) printUsage() {
	fmt.Println("Usage:")

	fmt.Println(" createwallet - Creates a new keypair and stores it")
	fmt.Println(" listaddresses - Lists the addresses in the keystore")
	fmt.Println(" validateaddress -address ADDRESS [-denylist FILE] - Checks an address decodes and is acceptable")
	fmt.Println(" decodeaddress -address ADDRESS - Shows what an address pays to")
	fmt.Println(" dumpprivkey -address ADDRESS - Prints the stored private key in wallet import format")
	fmt.Println(" importprivkey -key WIF - Imports a private key and stores it")
	fmt.Println(" encode -hex BYTES - Base58check encodes raw hex bytes")
	fmt.Println(" decode -text TEXT - Decodes base58check text to hex")

	// set NETWORK=testnet to work against testnet prefixes
}

// validates arguments passed to command line
func (cli *CommandLine) validateArgs() {
	if len(os.Args) < 2 {
		cli.printUsage()
		runtime.Goexit() // lets deferred DB closes run before exit
	}
}

// network is chosen by the NETWORK environment variable, mainnet when unset
func (cli *CommandLine) params() *chaincfg.Params {
	if os.Getenv("NETWORK") == "testnet" {
		return &chaincfg.TestNet3Params
	}
	return &chaincfg.MainNetParams
}

func (cli *CommandLine) openStore(params *chaincfg.Params) *keystore.Store {
	store, err := keystore.Open(fmt.Sprintf(keystorePath, params.Name), params)
	if err != nil {
		log.Panic(err)
	}
	return store
}

func (cli *CommandLine) createWallet(params *chaincfg.Params) {
	store := cli.openStore(params)
	defer store.Close()

	w := wallet.MakeWallet()
	address, err := store.Put(w)
	if err != nil {
		log.Panic(err)
	}

	fmt.Printf("New address is: %s\n", address)
}

func (cli *CommandLine) listAddresses(params *chaincfg.Params) {
	store := cli.openStore(params)
	defer store.Close()

	addresses, err := store.Addresses()
	if err != nil {
		log.Panic(err)
	}
	for _, address := range addresses {
		fmt.Println(address)
	}
}

func (cli *CommandLine) validateAddress(address, denyFile string, params *chaincfg.Params) {
	addr, err := wallet.DecodeAddress(address, params)
	if err != nil {
		fmt.Printf("invalid: %v\n", err)
		return
	}
	if !addr.IsValid() {
		fmt.Println("invalid: unknown version or wrong hash length")
		return
	}

	// policy check runs after the codec has accepted the address
	deny := cli.loadDenyList(denyFile)
	if deny.Blocked(address) {
		fmt.Println("valid but deny-listed")
		return
	}

	switch addr.Destination().Kind {
	case wallet.KeyHashDestination:
		fmt.Println("valid pay-to-pubkey-hash address")
	case wallet.ScriptHashDestination:
		fmt.Println("valid pay-to-script-hash address")
	}
}

// one address per line, blank lines ignored
func (cli *CommandLine) loadDenyList(path string) *wallet.DenyList {
	if path == "" {
		return nil
	}
	file, err := os.Open(path)
	if err != nil {
		log.Panic(err)
	}
	defer file.Close()

	var addrs []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			addrs = append(addrs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Panic(err)
	}
	return wallet.NewDenyList(addrs...)
}

func (cli *CommandLine) decodeAddress(address string, params *chaincfg.Params) {
	addr, err := wallet.DecodeAddress(address, params)
	if err != nil {
		log.Panic(err)
	}

	dest := addr.Destination()
	switch dest.Kind {
	case wallet.KeyHashDestination:
		fmt.Printf("pubkey hash: %x\n", dest.Hash)
	case wallet.ScriptHashDestination:
		fmt.Printf("script hash: %x\n", dest.Hash)
	default:
		fmt.Println("not a recognized destination")
	}
}

func (cli *CommandLine) dumpPrivKey(address string, params *chaincfg.Params) {
	store := cli.openStore(params)
	defer store.Close()

	secret, err := store.Get(address)
	if err != nil {
		log.Panic(err)
	}

	wif, err := wallet.EncodeSecretKey(secret.Key, secret.Compressed, params)
	if err != nil {
		log.Panic(err)
	}
	fmt.Println(wif)
}

func (cli *CommandLine) importPrivKey(wif string, params *chaincfg.Params) {
	secret, err := wallet.DecodeSecretKey(wif, params)
	if err != nil {
		log.Panic(err)
	}

	w := wallet.FromPrivateKeyBytes(secret.Key)
	address := w.Address(params).String()

	store := cli.openStore(params)
	defer store.Close()

	if err := store.PutKey(address, wif); err != nil {
		log.Panic(err)
	}
	fmt.Printf("Imported key for address: %s\n", address)
}

func (cli *CommandLine) encode(hexBytes string) {
	raw, err := hex.DecodeString(hexBytes)
	if err != nil {
		log.Panic(err)
	}
	fmt.Println(wallet.NewPayload(nil, raw).String())
}

func (cli *CommandLine) decode(text string) {
	p, err := wallet.DecodePayload(text, 0)
	if err != nil {
		log.Panic(err)
	}
	fmt.Printf("%x\n", p.Data)
}

func (cli *CommandLine) Run() {
	cli.validateArgs()

	params := cli.params()

	createWalletCmd := flag.NewFlagSet("createwallet", flag.ExitOnError)
	listAddressesCmd := flag.NewFlagSet("listaddresses", flag.ExitOnError)
	validateAddressCmd := flag.NewFlagSet("validateaddress", flag.ExitOnError)
	decodeAddressCmd := flag.NewFlagSet("decodeaddress", flag.ExitOnError)
	dumpPrivKeyCmd := flag.NewFlagSet("dumpprivkey", flag.ExitOnError)
	importPrivKeyCmd := flag.NewFlagSet("importprivkey", flag.ExitOnError)
	encodeCmd := flag.NewFlagSet("encode", flag.ExitOnError)
	decodeCmd := flag.NewFlagSet("decode", flag.ExitOnError)

	validateAddressAddress := validateAddressCmd.String("address", "", "The address to validate")
	validateAddressDenyList := validateAddressCmd.String("denylist", "", "File of deny-listed addresses, one per line")
	decodeAddressAddress := decodeAddressCmd.String("address", "", "The address to decode")
	dumpPrivKeyAddress := dumpPrivKeyCmd.String("address", "", "The address whose key to dump")
	importPrivKeyKey := importPrivKeyCmd.String("key", "", "The private key in wallet import format")
	encodeHex := encodeCmd.String("hex", "", "Raw bytes as hex")
	decodeText := decodeCmd.String("text", "", "Base58check text")

	switch os.Args[1] {
	case "createwallet":
		err := createWalletCmd.Parse(os.Args[2:])
		handle(err)
	case "listaddresses":
		err := listAddressesCmd.Parse(os.Args[2:])
		handle(err)
	case "validateaddress":
		err := validateAddressCmd.Parse(os.Args[2:])
		handle(err)
	case "decodeaddress":
		err := decodeAddressCmd.Parse(os.Args[2:])
		handle(err)
	case "dumpprivkey":
		err := dumpPrivKeyCmd.Parse(os.Args[2:])
		handle(err)
	case "importprivkey":
		err := importPrivKeyCmd.Parse(os.Args[2:])
		handle(err)
	case "encode":
		err := encodeCmd.Parse(os.Args[2:])
		handle(err)
	case "decode":
		err := decodeCmd.Parse(os.Args[2:])
		handle(err)
	default:
		cli.printUsage()
		runtime.Goexit()
	}

	if createWalletCmd.Parsed() {
		cli.createWallet(params)
	}
	if listAddressesCmd.Parsed() {
		cli.listAddresses(params)
	}
	if validateAddressCmd.Parsed() {
		if *validateAddressAddress == "" {
			validateAddressCmd.Usage()
			runtime.Goexit()
		}
		cli.validateAddress(*validateAddressAddress, *validateAddressDenyList, params)
	}
	if decodeAddressCmd.Parsed() {
		if *decodeAddressAddress == "" {
			decodeAddressCmd.Usage()
			runtime.Goexit()
		}
		cli.decodeAddress(*decodeAddressAddress, params)
	}
	if dumpPrivKeyCmd.Parsed() {
		if *dumpPrivKeyAddress == "" {
			dumpPrivKeyCmd.Usage()
			runtime.Goexit()
		}
		cli.dumpPrivKey(*dumpPrivKeyAddress, params)
	}
	if importPrivKeyCmd.Parsed() {
		if *importPrivKeyKey == "" {
			importPrivKeyCmd.Usage()
			runtime.Goexit()
		}
		cli.importPrivKey(*importPrivKeyKey, params)
	}
	if encodeCmd.Parsed() {
		if *encodeHex == "" {
			encodeCmd.Usage()
			runtime.Goexit()
		}
		cli.encode(*encodeHex)
	}
	if decodeCmd.Parsed() {
		if *decodeText == "" {
			decodeCmd.Usage()
			runtime.Goexit()
		}
		cli.decode(*decodeText)
	}
}

func handle(err error) {
	if err != nil {
		log.Panic(err)
	}
}
