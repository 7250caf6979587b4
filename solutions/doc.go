// SPDX-FileCopyrightText: 2024 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package solutions loads handler sets from YAML.

A handler set file has a single handlers mapping.  Scalar values become
dealwith.Message handlers and mappings become *dealwith.Descriptor handlers:

  handlers:
    "404": Resource not found
    ERR_NETWORK:
      message: Network unavailable
      silent: true
      notify:
        timeout: 3000

Environment variables referenced as $VAR or ${VAR} are expanded before parsing.
Hooks and resolvers cannot be expressed in YAML; register those in code.
*/
package solutions
