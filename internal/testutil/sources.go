package testutil

// TwoRoadHCL is TwoRoadDocument written as an HCL document.
const TwoRoadHCL = `
header {
  name = "two roads"
}

road {
  id = 1

  successor {
    element_type  = "road"
    element_id    = 2
    contact_point = "start"
  }

  lanes {
    left {
      lane {
        id   = -1
        type = "driving"
        width { a = 3.5 }
      }
    }
  }

  geometry "line" {
    s      = 0
    x      = 0
    y      = 0
    hdg    = 0
    length = 10
  }
}

road {
  id       = 2
  junction = -1

  lanes {
    left {
      lane {
        id   = -1
        type = "driving"
        width { a = 3.5 }
      }
    }
  }

  geometry "line" {
    length = 10
  }
}
`

// JunctionHCL is JunctionDocument written as an HCL document.
const JunctionHCL = `
road {
  id = 1

  successor {
    element_type = "junction"
    element_id   = 5
  }

  lanes {
    right {
      lane {
        id   = -1
        type = "driving"
        width { a = 3 }
      }
    }
  }

  geometry "line" { length = 20 }
}

road {
  id       = 2
  junction = 5
  lanes {
    right {
      lane {
        id   = -1
        type = "driving"
        width { a = 3 }
      }
    }
  }
}

road {
  id       = 3
  junction = 5
  lanes {
    right {
      lane {
        id   = -1
        type = "driving"
        width { a = 3 }
      }
    }
  }
}

junction {
  id = 5

  connection {
    id              = 0
    incoming_road   = 1
    connecting_road = 2
    contact_point   = "end"
    lane_link {
      from = -1
      to   = -1
    }
  }

  connection {
    id              = 1
    incoming_road   = 1
    connecting_road = 3
    contact_point   = "end"
  }
}
`

// TwoRoadXODR is TwoRoadDocument written as an OpenDRIVE document.
const TwoRoadXODR = `<?xml version="1.0" encoding="UTF-8"?>
<OpenDRIVE>
  <header revMajor="1" revMinor="4" name="two roads"/>
  <road id="1" junction="-1" length="10">
    <link>
      <successor elementType="road" elementId="2" contactPoint="start"/>
    </link>
    <planView>
      <geometry s="0" x="0" y="0" hdg="0" length="10"><line/></geometry>
    </planView>
    <lanes>
      <laneSection s="0">
        <left>
          <lane id="-1" type="driving"><width sOffset="0" a="3.5" b="0" c="0" d="0"/></lane>
        </left>
        <center>
          <lane id="0" type="none"/>
        </center>
      </laneSection>
    </lanes>
  </road>
  <road id="2" junction="-1" length="10">
    <planView>
      <geometry s="0" x="0" y="0" hdg="0" length="10"><line/></geometry>
    </planView>
    <lanes>
      <laneSection s="0">
        <left>
          <lane id="-1" type="driving"><width sOffset="0" a="3.5" b="0" c="0" d="0"/></lane>
        </left>
      </laneSection>
    </lanes>
  </road>
</OpenDRIVE>
`

// JunctionXODR is JunctionDocument written as an OpenDRIVE document.
const JunctionXODR = `<?xml version="1.0" encoding="UTF-8"?>
<OpenDRIVE>
  <road id="1" junction="-1">
    <link>
      <successor elementType="junction" elementId="5"/>
    </link>
    <planView>
      <geometry s="0" x="0" y="0" hdg="0" length="20"><line/></geometry>
    </planView>
    <lanes>
      <laneSection s="0">
        <right>
          <lane id="-1" type="driving"><width sOffset="0" a="3"/></lane>
        </right>
      </laneSection>
    </lanes>
  </road>
  <road id="2" junction="5">
    <lanes>
      <laneSection s="0">
        <right>
          <lane id="-1" type="driving"><width sOffset="0" a="3"/></lane>
        </right>
      </laneSection>
    </lanes>
  </road>
  <road id="3" junction="5">
    <lanes>
      <laneSection s="0">
        <right>
          <lane id="-1" type="driving"><width sOffset="0" a="3"/></lane>
        </right>
      </laneSection>
    </lanes>
  </road>
  <junction id="5">
    <connection id="0" incomingRoad="1" connectingRoad="2" contactPoint="end">
      <laneLink from="-1" to="-1"/>
    </connection>
    <connection id="1" incomingRoad="1" connectingRoad="3" contactPoint="end"/>
  </junction>
</OpenDRIVE>
`
