// Package hcl_adapter provides the HCL implementation of the model.Loader
// interface. It parses road-network documents written in HCL and translates
// them into the format-agnostic model.
//
// A document is a sequence of top-level blocks. A block holding more than one
// attribute must span several lines:
//
//	header {
//	  name = "town"
//	}
//
//	road {
//	  id       = 1
//	  junction = -1
//	  length   = 10
//
//	  successor {
//	    element_type  = "road"
//	    element_id    = 2
//	    contact_point = "start"
//	  }
//
//	  lanes {
//	    left {
//	      lane {
//	        id   = 1
//	        type = "driving"
//	        width {
//	          s_offset = 0
//	          a        = 3.5
//	        }
//	      }
//	    }
//	    right {}
//	  }
//
//	  geometry "line" {
//	    s      = 0
//	    x      = 0
//	    y      = 0
//	    hdg    = 0
//	    length = 4
//	  }
//	  geometry "arc" {
//	    s         = 4
//	    length    = 3
//	    curvature = 0.1
//	  }
//	  geometry "spiral" {
//	    s          = 7
//	    length     = 3
//	    curv_start = 0
//	    curv_end   = 0.2
//	  }
//	}
//
//	junction {
//	  id = 5
//	  connection {
//	    incoming_road   = 1
//	    connecting_road = 2
//	    contact_point   = "end"
//	    lane_link {
//	      from = -1
//	      to   = -1
//	    }
//	  }
//	}
package hcl_adapter
