// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the data shapes exchanged between the AnyList
// list service, the home-automation integration and its collaborators.
// Go structs define the JSON content; field names are the camelCase
// names of the external contract.
//
// Key types:
//
//   - [ListItem], [Ingredient], [Recipe], [RecipeCollection],
//     [NutritionalInfo] -- list and recipe content
//   - [Response], [APIError] -- the response envelope and its error
//     body; [ListsData], [ItemsData], [AllItemsData] and friends are
//     the typed data payloads
//   - [AddItemRequest], [UpdateItemRequest], [CheckItemRequest] and
//     the recipe/collection requests, with [PaginationParams] and
//     [RecipeQueryParams]
//   - [StatusCode] -- the closed set of HTTP-like status codes
//   - [Service], [Intent], [Endpoint] -- closed name sets with
//     [IsValidService], [IsValidIntent] and [IsValidEndpoint]
//
// Classification predicates ([IsSuccessStatusCode],
// [IsErrorStatusCode], [IsAPIErrorResponse]) and membership
// validators never fail: they return false for values outside their
// domain. Content types carry Validate methods that return an error
// describing the first invalid field.
//
// [ChangedListItemFields], [CompareLists] and [SplitByChecked] derive
// the change summaries carried by list and recipe events.
//
// This package depends on no other packages in this module.
package schema
