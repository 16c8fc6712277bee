/*
Package sift is a schema-guided extraction and form-filling dialog
engine. You describe what to collect as a small tree of nodes (options,
constrained selections, composite forms); sift asks the user about one
node at a time, sends their utterance to a language model, resolves the
completion into a value and tracks progress until every element is
filled in.

# Concept

The engine follows a ports-and-adapters layout. The core packages
(schema, automaton, interp, extract) never talk to the network: the
language model sits behind the ports.Completer interface and session
persistence behind ports.StateStore. Adapters for an OpenAI-compatible
endpoint, an in-memory store and Redis live under pkg/adapters, next to
HTTP and MCP front ends.

Model output is untrusted. A completion that cannot be resolved into an
allowed value never corrupts the session: the turn fails with a polite
message and the state stays as it was, so the user simply retries.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/sift"
		"github.com/aretw0/sift/pkg/adapters/openai"
		"github.com/aretw0/sift/pkg/schema"
	)

	func main() {
		ctx := context.Background()

		completer, err := openai.New(ctx, openai.Config{
			APIKey: "...",
			Model:  "gpt-4o-mini",
		})
		if err != nil {
			log.Fatal(err)
		}

		root := schema.NewSelection("do", "What do you want to do?",
			schema.NewOption("eat", "Have a meal"),
			schema.NewOption("sleep", "Take a nap"),
		)

		session, err := sift.NewSession(root, completer)
		if err != nil {
			log.Fatal(err)
		}

		msg, err := session.Interact(ctx, "I'm hungry")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(msg.Content)
	}
*/
package sift
