// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"velvet/internal/lsp"
)

const lsName = "velvet" // Name identifier for the language server

var handler protocol.Handler

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	velvetHandler := lsp.NewVelvetHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:             velvetHandler.Initialize,
		Initialized:            velvetHandler.Initialized,
		Shutdown:               velvetHandler.Shutdown,
		SetTrace:               velvetHandler.SetTrace,
		TextDocumentDidOpen:    velvetHandler.TextDocumentDidOpen,
		TextDocumentDidClose:   velvetHandler.TextDocumentDidClose,
		TextDocumentDidChange:  velvetHandler.TextDocumentDidChange,
		TextDocumentCompletion: velvetHandler.TextDocumentCompletion,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Velvet LSP server...")

	// Most editors talk to language servers over stdio.
	if err := s.RunStdio(); err != nil {
		log.Println("Error starting Velvet LSP server:", err)
		os.Exit(1)
	}
}
