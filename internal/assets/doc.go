// Package assets provides the CSS styles and HTML templates that form the
// page chrome of assembled documents and the snippets injected into site pages.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in chrome)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   ├── print.css      # PDF source page
//	│   └── screen.css     # HTML deliverable
//	└── templates/
//	    ├── print.html     # PDF source page chrome
//	    ├── screen.html    # HTML deliverable page chrome
//	    └── footer.html    # Site footer include
//
// Overriding a single file keeps the embedded version of the others.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
