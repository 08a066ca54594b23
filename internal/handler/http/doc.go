// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the GetTentor backend.
//
// It wires chi routes to the service layer and provides middleware for
// request tracing, access logging, per-request timeouts and role based
// authentication. Request payloads are checked by a [validators.Validator]
// before they reach a service. Failures are answered as {"error": msg}
// with the status chosen by the error table in errors_mapper.go.
package http
