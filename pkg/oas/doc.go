// Package oas publishes NWB extension groups as OpenAPI 3 component schemas
// so services that exchange lab metadata as JSON can reuse the definitions.
// NWB-only details travel in x-nwb-* extensions.
package oas
