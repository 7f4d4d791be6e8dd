// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - accounts holding lamports and program data
//
// every account is stored in the Accounts pool under its address; all
// changes are made inside Execute, which runs one storage transaction
// and either commits all of its writes or none of them
package ledger
