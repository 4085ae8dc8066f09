// Package highlight renders source code snippets
// as line-numbered SVG or HTML markup.
// It uses the Chroma library to do the tokenization and styling work.
//
// The markup it produces is deliberately regular:
// every source line gets one line-number label and one content element,
// so that post-processing (see the inject package)
// can locate lines without a full document model.
package highlight
