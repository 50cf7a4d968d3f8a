// Package site holds the glue of the portfolio's static pages: the blog
// index filter state and the build-time processing that injects the shared
// footer and pre-sorts the index.
//
// Filtering and sorting are pure functions over Item values. Controller
// owns the one mutable piece, the current Criteria, and returns a View after
// every change. Prerender applies the same rules to HTML with goquery so the
// generated pages are correct before any script runs.
package site
