package opendrive

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/specialistvlad/opendrivego/internal/model"
	"github.com/specialistvlad/opendrivego/internal/road"
)

const tracerName = "internal/opendrive"

// Build transforms doc into segment definitions and hands them to builder,
// then returns the finalized map. A document without roads yields the empty
// map. On error no segment has been added to builder.
func Build(ctx context.Context, doc *model.Document, builder road.Builder) (*road.Map, Report, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "opendrive.Build")
	defer span.End()

	logger := ctxlog.FromContext(ctx)

	if len(doc.Roads) == 0 {
		logger.Warn("Document has no roads, building an empty map.", "junctions", len(doc.Junctions))
		return builder.Build(), Report{}, nil
	}

	roads := NewRoadIndex(ctx, doc)
	junctions := NewJunctionIndex(ctx, doc)

	segments, report, err := Assemble(ctx, roads, junctions)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, report, fmt.Errorf("failed to assemble road segments: %w", err)
	}

	for _, seg := range segments {
		builder.AddSegment(seg)
	}
	span.SetAttributes(
		attribute.Int("opendrive.segments", report.Segments),
		attribute.Int("opendrive.dropped_geometries", report.DroppedGeometries),
		attribute.Int("opendrive.unresolved_links", report.UnresolvedLinks),
	)

	logger.Info("Build: Road map construction successful.", "segments", report.Segments)
	return builder.Build(), report, nil
}

// Load parses the document at path with loader and builds its road map.
func Load(ctx context.Context, path string, loader model.Loader) (*road.Map, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "opendrive.Load")
	defer span.End()
	span.SetAttributes(attribute.String("opendrive.path", path))

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading road network document.", "path", path)

	doc, err := loader.Load(ctx, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to load document %s: %w", path, err)
	}

	m, _, err := Build(ctx, doc, road.NewMapBuilder())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return m, nil
}

// LoadReader builds a road map from a stream. Stream parsing is not
// supported yet: the input is left unread and the result is always the
// empty map.
func LoadReader(ctx context.Context, r io.Reader) (*road.Map, error) {
	ctxlog.FromContext(ctx).Warn("Loading from a stream is not supported, building an empty map.")
	return road.NewMapBuilder().Build(), nil
}
