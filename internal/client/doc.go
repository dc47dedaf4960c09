// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the posts API.
//
// Each invocation runs one command against the server through
// [adapter.PostsAPI] and prints the result as indented JSON.
//
//	list                 published posts
//	get <id>             one post
//	new <title> <body>   create an unpublished post
//	publish <id>         publish a post
//	delete <id>          delete a post
//	count                completed list requests
package client
