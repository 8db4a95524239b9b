package tagmark

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/Drolfothesgnir/tagmark/styled"
)

// Parser turns markup into styled components using the tags of its TagResolver.
// A Parser is immutable and safe for concurrent use as long as its TagResolver is.
type Parser struct {
	resolver TagResolver
	strict   bool
	limits   Limits
	logger   zerolog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict turns the recoverable problems into errors.
func WithStrict(strict bool) Option {
	return func(p *Parser) { p.strict = strict }
}

func WithLimits(l Limits) Option {
	return func(p *Parser) { p.limits = l }
}

// WithLogger sets the logger receiving the debug trace of every parse.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// NewParser creates the Parser. It returns a [ConfigError] if the limits are invalid.
func NewParser(resolver TagResolver, opts ...Option) (*Parser, error) {
	p := &Parser{
		resolver: resolver,
		limits:   DefaultLimits(),
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if err := p.limits.Validate(); err != nil {
		return nil, err
	}
	p.limits = p.limits.withDefaults()

	if p.resolver == nil {
		p.resolver = NewRegistry()
	}

	return p, nil
}

func (p *Parser) Strict() bool {
	return p.strict
}

func (p *Parser) Limits() Limits {
	return p.limits
}

func (p *Parser) Resolver() TagResolver {
	return p.resolver
}

// Parse parses the message into one component.
func (p *Parser) Parse(message string, placeholders PlaceholderResolver) (*styled.Component, error) {
	warns, err := NewWarnings(WarnOverflowTrunc, p.limits.MaxWarnings)
	if err != nil {
		return nil, err
	}

	tree, err := p.ParseTree(message, placeholders, &warns)
	if err != nil {
		return nil, err
	}

	return Render(tree)
}

// ParseTree expands the placeholders, tokenizes the message and builds the tag tree.
// Recoverable problems are added to warns, which may be nil.
func (p *Parser) ParseTree(message string, placeholders PlaceholderResolver, warns *Warnings) (*Tree, error) {
	if placeholders == nil {
		placeholders = NoPlaceholders
	}

	log := p.logger.With().Str("component", "parser").Logger()
	log.Debug().Str("message", message).Bool("strict", p.strict).Msg("beginning parsing message")

	expanded := p.ResolvePlaceholders(message, placeholders)
	if expanded != message {
		log.Debug().Str("expanded", expanded).Msg("placeholders expanded")
	}

	tokens := Tokenize(expanded)
	log.Debug().Int("tokens", len(tokens)).Msg("message tokenized")

	ctx := &Context{parser: p, placeholders: placeholders}

	tree, err := BuildTree(tokens, expanded, BuildOptions{
		ResolveTag: func(n *Node) (Tag, error) {
			log.Debug().Str("tag", n.Name()).Int("pos", n.Token.Span.Start).Msg("attempting to match node")

			tag, err := p.resolver.Resolve(n.Name(), NewArgumentQueue(n.Name(), n.Args()), ctx)
			if err != nil {
				log.Debug().Err(err).Str("tag", n.Name()).Msg("tag rejected")
				return nil, err
			}

			if tag != nil {
				log.Debug().Str("tag", n.Name()).Msg("successfully matched node to tag")
			}
			return tag, nil
		},
		IsTagName: func(name string, includePlaceholders bool) bool {
			return p.isTagName(name, includePlaceholders, placeholders)
		},
		Placeholders: placeholders,
		Strict:       p.strict,
		MaxDepth:     p.limits.MaxDepth,
		Warnings:     warns,
	})
	if err != nil {
		log.Debug().Err(err).Msg("parsing failed")
		return nil, err
	}

	if warns != nil {
		for _, w := range warns.List() {
			log.Debug().Stringer("issue", w.Issue).Int("pos", w.Span.Start).Msg(w.Description)
		}
	}

	if e := log.Trace(); e.Enabled() {
		e.Msg("text parsed into element tree:\n" + tree.String())
	}

	return tree, nil
}

// Tokenize lexes the message as it is, without the placeholder expansion.
func (p *Parser) Tokenize(message string) []Token {
	return Tokenize(message)
}

// ResolvePlaceholders expands the string placeholders of the message within the placeholder passes limit.
func (p *Parser) ResolvePlaceholders(message string, placeholders PlaceholderResolver) string {
	return ResolvePlaceholders(message, p.resolver.Has, placeholders, p.limits.MaxPlaceholderPasses)
}

// ResolveStringPlaceholders substitutes the argument-less string placeholder tags once, keeping all other markup.
func (p *Parser) ResolveStringPlaceholders(message string, placeholders PlaceholderResolver) string {
	return ResolveStringPlaceholders(message, placeholders)
}

// Escape makes every tag known to the parser plain text.
func (p *Parser) Escape(message string) string {
	return Escape(message, p.resolver.Has)
}

// Strip removes every tag known to the parser.
func (p *Parser) Strip(message string) string {
	return Strip(message, p.resolver.Has)
}

func (p *Parser) isTagName(name string, includePlaceholders bool, placeholders PlaceholderResolver) bool {
	if p.resolver.Has(strings.ToLower(name)) {
		return true
	}
	if !includePlaceholders {
		return false
	}
	_, ok := placeholders.ResolvePlaceholder(name)
	return ok
}
