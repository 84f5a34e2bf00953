// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package stdlib implements helper functions that wrap the standard
// library.
package stdlib
