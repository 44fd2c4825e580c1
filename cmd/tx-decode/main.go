// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gsolana/transaction"
)

type txDecodeFlags struct {
	flagset  *flag.FlagSet
	hexInput bool
	verify   bool
}

func newTxDecodeFlags() *txDecodeFlags {
	f := &txDecodeFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.BoolVar(
		&f.hexInput,
		"hex",
		false,
		"treat input as hex instead of base64",
	)
	f.flagset.BoolVar(
		&f.verify,
		"verify",
		false,
		"verify signatures and print the message hash",
	)
	return f
}

func main() {
	f := newTxDecodeFlags()
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.flagset.NArg() < 1 {
		fmt.Println("no serialized transaction provided")
		os.Exit(1)
	}
	input := f.flagset.Arg(0)
	var txBytes []byte
	var err error
	if f.hexInput {
		txBytes, err = hex.DecodeString(input)
	} else {
		txBytes, err = base64.StdEncoding.DecodeString(input)
	}
	if err != nil {
		fmt.Printf("ERROR: failed to decode input: %s\n", err)
		os.Exit(1)
	}
	tx, err := transaction.NewVersionedTransactionFromBytes(txBytes)
	if err != nil {
		fmt.Printf("ERROR: failed to parse transaction: %s\n", err)
		os.Exit(1)
	}
	header := tx.Message.Header()
	fmt.Printf("Version: %s\n", tx.Version())
	fmt.Printf("Required signatures: %d\n", header.NumRequiredSignatures)
	fmt.Printf(
		"Read-only accounts: %d signed, %d unsigned\n",
		header.NumReadonlySignedAccounts,
		header.NumReadonlyUnsignedAccounts,
	)
	fmt.Printf("Signatures:\n")
	for i, signature := range tx.Signatures {
		fmt.Printf("  %d: %s\n", i, signature)
	}
	fmt.Printf("Static account keys:\n")
	for i, accountKey := range tx.Message.StaticAccountKeys() {
		fmt.Printf("  %d: %s\n", i, accountKey)
	}
	if !f.verify {
		return
	}
	if err := tx.Sanitize(true); err != nil {
		fmt.Printf("ERROR: transaction failed sanitization: %s\n", err)
		os.Exit(1)
	}
	for i, verified := range tx.VerifyWithResults() {
		fmt.Printf("Signature %d verified: %v\n", i, verified)
	}
	txHash, err := tx.VerifyAndHashMessage()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Message hash: %s\n", txHash)
}
