package web

import "embed"

// FS holds the static assets the page requests, under "static/".
//
//go:embed static/*
var FS embed.FS
