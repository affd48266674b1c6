// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"sola/internal/lsp"
)

const lsName = "sola" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	solaHandler := lsp.NewSolaHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:            solaHandler.Initialize,
		Initialized:           solaHandler.Initialized,
		Shutdown:              solaHandler.Shutdown,
		SetTrace:              solaHandler.SetTrace,
		TextDocumentDidOpen:   solaHandler.TextDocumentDidOpen,
		TextDocumentDidClose:  solaHandler.TextDocumentDidClose,
		TextDocumentDidChange: solaHandler.TextDocumentDidChange,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Sola LSP server...")

	// Run over standard input/output, the transport editors expect.
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Sola LSP server:", err)
		os.Exit(1)
	}
}
