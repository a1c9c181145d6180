// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watermark hides an identity token inside free text using two
// invisible codepoint channels and recovers it again.
//
// The zero-width channel (U+2060..U+2064) carries 2-bit symbols and sits
// immediately before every space. The tag channel (U+E0000..U+E007F) carries
// 4-bit symbols and sits immediately after every space and at the end of the
// text. Both channels encode the same [Token], so text survives the loss of
// either one.
//
// The package is split along the lifecycle of a watermark:
//
//   - [Session] precomputes the two channel prefixes for one token;
//   - [Mark] interleaves them into text, idempotently;
//   - [NextVisiblePosition], [MoveSelection] and [Field] keep caret handling
//     blind to the markers;
//   - [FindWatermarks] and [Matcher] recover and attribute tokens later;
//   - [RenderDotMatrix] renders the token as a tileable dot pattern.
//
// All functions are pure and safe for concurrent use. Nothing here performs
// I/O except [Matcher], which queries a caller-supplied [Registry].
package watermark
